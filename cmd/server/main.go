package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"

	"culture-podcast/config"
	"culture-podcast/internal/api"
)

func main() {
	// 设置日志格式
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("启动每日文化播客服务")

	// 加载配置
	cfg := config.LoadConfig()

	// 创建API服务器
	server, err := api.NewServer(cfg)
	if err != nil {
		log.Fatalf("创建服务器失败: %v", err)
	}

	// 创建定时任务，每天定点生成当日播客
	c := cron.New(cron.WithSeconds())

	_, err = c.AddFunc(cfg.Server.CronSpec, func() {
		log.Println("定时任务触发：生成今日文化播客")
		// 主题留空，按日轮换
		go server.GenerateDaily("")
	})

	if err != nil {
		log.Printf("添加定时任务失败: %v", err)
	} else {
		c.Start()
		defer c.Stop()
		log.Println("定时任务已启动")
	}

	// 创建通道接收系统信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// 启动服务器（非阻塞）
	go func() {
		log.Printf("服务器正在监听端口 %s", cfg.Server.Port)
		if err := server.Run(); err != nil {
			log.Fatalf("服务器运行失败: %v", err)
		}
	}()

	// 等待退出信号
	<-quit
	log.Println("收到退出信号，正在关闭服务")
}
