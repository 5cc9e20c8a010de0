package script

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"culture-podcast/internal/models"
)

// weekdays 星期名称表，周一在前
var weekdays = []string{"星期一", "星期二", "星期三", "星期四", "星期五", "星期六", "星期日"}

var (
	leadingSpaceRe = regexp.MustCompile(`\n[ \t]+`)
	blankLinesRe   = regexp.MustCompile(`\n{3,}`)
)

// Compose 把内容渲染成完整的播客脚本
func Compose(record *models.ContentRecord, now time.Time) string {
	dateStr := now.Format("2006年01月02日")

	// time.Weekday以周日为0，转换成周一在前的下标
	weekdayStr := weekdays[(int(now.Weekday())+6)%7]

	content := record.Content
	keywords := content.Keywords
	if len(keywords) > 3 {
		keywords = keywords[:3]
	}

	text := fmt.Sprintf(`
【开场音乐，渐弱】

各位听众，大家好。
欢迎收听《每日文化》，我是您的文化向导。
今天是%s，%s。

今天，我们将一起探索%s的世界。
准备好了吗？让我们开始今天的精神之旅。

【主题音乐，3秒】

今天要和大家分享的是：%s

%s

【过渡音乐，3秒】

以上就是今天的文化分享。
内容关键词包括：%s。

文化如光，照亮心灵；
艺术似水，滋养生命。

每天一点文化知识，让生活更有深度。
感谢您的收听，我们明天同一时间，继续文化之旅。
再见。

【结束音乐，渐强，10秒后结束】
`, dateStr, weekdayStr, record.ThemeCN, content.Title, content.Body, strings.Join(keywords, "、"))

	// 清理多余空白
	text = leadingSpaceRe.ReplaceAllString(text, "\n")
	text = blankLinesRe.ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text)
}
