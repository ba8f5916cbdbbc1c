package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"calendar-planner/internal/bot"
	"calendar-planner/internal/config"
	"calendar-planner/internal/repository"
	"calendar-planner/internal/service"
	"calendar-planner/internal/store"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	kv, err := repository.Open(cfg.StorageDriver, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("storage: %v", err)
	}
	defer kv.Close()

	planner := store.New(kv)
	if err := planner.Load(ctx); err != nil {
		log.Fatalf("load planner: %v", err)
	}
	cancelSub := planner.Subscribe(func(s store.Snapshot) {
		log.Printf("[info] planner changed events=%d tasks=%d", len(s.Events), len(s.Tasks))
	})
	defer cancelSub()

	agendaSvc := service.NewAgendaService(planner)

	telegramBot, err := bot.New(cfg.TelegramToken, planner, agendaSvc, &cfg)
	if err != nil {
		log.Fatalf("bot: %v", err)
	}

	scheduler := service.NewSchedulerService(time.Local, 30*time.Second)
	dailyID, err := scheduler.ScheduleDaily("daily report", cfg.ReportTime, telegramBot.SendDailyReports)
	if err != nil {
		log.Fatalf("schedule daily report: %v", err)
	}
	if cfg.ReportInterval() > 0 {
		if _, err := scheduler.ScheduleInterval("interval report", cfg.ReportInterval(), telegramBot.SendDailyReports); err != nil {
			log.Fatalf("schedule reports: %v", err)
		}
	}
	scheduler.Start()
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := scheduler.Stop(stopCtx); err != nil {
			log.Printf("scheduler: %v", err)
		}
	}()
	log.Printf("[info] next daily report at %s", scheduler.Next(dailyID).Format(time.RFC3339))

	log.Println("Calendar planner bot started.")
	if err := telegramBot.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("bot stopped with error: %v", err)
	}
	log.Println("Shutdown complete.")
}
