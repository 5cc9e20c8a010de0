package cleanup

import (
	"log"
	"os"
	"path/filepath"
	"time"
)

// Sweep 删除各目录下超过保留天数的文件，返回删除数量。
// 单个文件删除失败只记录日志，不中断清理。
func Sweep(dirs []string, retentionDays int) int {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	deleted := 0

	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			if !os.IsNotExist(err) {
				log.Printf("读取目录失败 %s: %v", dir, err)
			}
			continue
		}

		log.Printf("清理 %s:", dir)
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			info, err := entry.Info()
			if err != nil {
				continue
			}
			if info.ModTime().After(cutoff) {
				continue
			}

			path := filepath.Join(dir, entry.Name())
			if err := os.Remove(path); err != nil {
				log.Printf("删除失败 %s: %v", path, err)
				continue
			}
			log.Printf("🗑️  删除: %s", entry.Name())
			deleted++
		}
	}

	return deleted
}
