package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/fardannozami/sparks/internal/achievement"
	"github.com/fardannozami/sparks/internal/app/usecase"
	"github.com/fardannozami/sparks/internal/assign"
	"github.com/fardannozami/sparks/internal/calendar"
	"github.com/fardannozami/sparks/internal/catalog"
	"github.com/fardannozami/sparks/internal/config"
	"github.com/fardannozami/sparks/internal/idgen"
	"github.com/fardannozami/sparks/internal/infra/metrics"
	"github.com/fardannozami/sparks/internal/infra/notify"
	"github.com/fardannozami/sparks/internal/infra/sqlite"
	"github.com/fardannozami/sparks/internal/infra/wa"

	"go.mau.fi/whatsmeow"
	"go.mau.fi/whatsmeow/types"
	"go.mau.fi/whatsmeow/types/events"
	walog "go.mau.fi/whatsmeow/util/log"
	_ "modernc.org/sqlite"
)

func main() {
	// 1. Load Config
	cfg := config.Load()

	// 2. Logger
	logger := walog.Stdout("Sparks", cfg.LogLevel, true)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 3. Database & Repositories
	// Enable WAL mode and busy timeout to avoid "database is locked" errors
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", cfg.SQLitePath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	kv := sqlite.NewKVStore(db)
	if err := kv.InitTable(ctx); err != nil {
		log.Fatalf("Failed to init table: %v", err)
	}
	store := sqlite.NewStateStore(kv, cfg.Location)
	contacts := sqlite.NewContactRepository(db)

	// 4. Domain
	clock := calendar.System(cfg.Location)
	cat := catalog.Default()
	engine, err := assign.NewEngine(cat, clock, idgen.NewUUIDGenerator("assignment_"))
	if err != nil {
		log.Fatalf("Failed to build assignment engine: %v", err)
	}
	evaluator := achievement.NewDefaultEvaluator(cat)

	telemetry := metrics.NewTelemetry(logger.Sub("Metrics"))
	if cfg.MetricsAddr != "" {
		go func() {
			if err := telemetry.Serve(ctx, cfg.MetricsAddr); err != nil {
				log.Printf("Metrics server stopped: %v", err)
			}
		}()
	}

	// 5. WhatsApp Service
	waService := wa.NewService(cfg.SQLitePath, logger)
	sender := wa.NewSender(func() wa.MessageClient {
		// A nil *whatsmeow.Client must not become a non-nil interface
		if c := waService.GetClient(); c != nil {
			return c
		}
		return nil
	}, cfg.OwnerPhone, wa.SenderOptions{
		PerMinute:       cfg.SendRatePerMin,
		ReplyDelayMinMs: cfg.ReplyDelayMinMs,
		ReplyDelayMaxMs: cfg.ReplyDelayMaxMs,
		ShowTyping:      cfg.ShowTyping,
	}, logger.Sub("Sender"))

	scheduler := notify.NewScheduler(clock, idgen.NewUUIDGenerator("notif_"), sender, logger.Sub("Scheduler"), notify.Options{
		Permitted: cfg.NotificationsEnabled && cfg.OwnerPhone != "",
		Tick:      cfg.SchedulerTick,
	})

	// 6. Use Cases
	session := usecase.NewSession(store, telemetry, clock, logger.Sub("Session"))
	if err := session.Load(ctx); err != nil {
		log.Fatalf("Failed to load state: %v", err)
	}
	reminders := usecase.NewReminders(scheduler, clock, logger.Sub("Reminders"))
	challengeTimer := usecase.NewChallengeTimer(session, cat, sender, 0, logger.Sub("Timer"))

	ensure := usecase.NewEnsureAssignmentUsecase(session, engine)
	flows := usecase.Flows{
		Onboard:      usecase.NewOnboardUsecase(session, reminders, ensure, logger.Sub("Onboard")),
		Settings:     usecase.NewUpdateSettingsUsecase(session, reminders, logger.Sub("Settings")),
		Ensure:       ensure,
		Start:        usecase.NewStartUsecase(session, reminders, challengeTimer, logger.Sub("Start")),
		Breathe:      usecase.NewBreatheUsecase(session, challengeTimer),
		Timer:        usecase.NewBeginTimerUsecase(challengeTimer),
		Complete:     usecase.NewCompleteUsecase(session, engine, evaluator, reminders, challengeTimer, logger.Sub("Complete")),
		Skip:         usecase.NewSkipUsecase(session, engine, challengeTimer),
		Swap:         usecase.NewSwapUsecase(session, engine, challengeTimer),
		Snooze:       usecase.NewSnoozeUsecase(session),
		Progress:     usecase.NewProgressUsecase(session, cat),
		Achievements: usecase.NewAchievementsUsecase(session, evaluator),
		Share:        usecase.NewShareUsecase(session),
		Reset:        usecase.NewResetUsecase(session, reminders, challengeTimer, logger.Sub("Reset")),
	}
	handleMessageUC := usecase.NewHandleMessageUsecase(flows, session, cat, logger.Sub("Chat"))

	// 7. Register Message Handler
	waService.SetMessageHandler(func(ctx context.Context, client *whatsmeow.Client, evt *events.Message) {
		// Ignore messages from self
		if evt.Info.IsFromMe {
			return
		}

		// Resolve LID to phone number so the owner can be matched
		senderJID := evt.Info.Sender
		var userID string
		if senderJID.Server == types.HiddenUserServer || senderJID.Server == types.DefaultUserServer && len(senderJID.User) > 15 {
			userID = contacts.ResolveLIDToPhone(ctx, senderJID.User)
		} else {
			userID = senderJID.User
		}

		if cfg.OwnerPhone != "" && userID != cfg.OwnerPhone {
			return
		}

		// Get message content
		msg := ""
		if evt.Message.Conversation != nil {
			msg = *evt.Message.Conversation
		} else if evt.Message.ExtendedTextMessage != nil && evt.Message.ExtendedTextMessage.Text != nil {
			msg = *evt.Message.ExtendedTextMessage.Text
		}

		if msg == "" {
			return
		}

		logger.Debugf("Message from %s: %s", userID, msg)

		// Execute Use Case
		response, err := handleMessageUC.Execute(ctx, userID, msg)
		if err != nil {
			logger.Errorf("Error handling message: %v", err)
			return
		}

		if response != "" {
			if err := sender.Reply(ctx, evt.Info.Chat, response); err != nil {
				logger.Errorf("Failed to send response: %v", err)
			}
		}
	})

	// 8. Initialize Client (DB, Device, etc) - DO NOT CONNECT YET
	if err := waService.Initialize(ctx); err != nil {
		log.Fatalf("Failed to initialize WhatsApp service: %v", err)
	}

	// 9. Connect / Login Logic
	if !waService.IsLoggedIn() {
		if cfg.BotPhone != "" {
			// Pair Code Mode
			// Must connect first to pair
			if err := waService.Connect(); err != nil {
				log.Fatalf("Failed to connect for pairing: %v", err)
			}

			log.Println("Not logged in. Attempting to pair with phone:", cfg.BotPhone)
			code, err := waService.Pair(ctx, cfg.BotPhone)
			if err != nil {
				log.Printf("Failed to generate pair code: %v", err)
			} else {
				log.Println("==================================================")
				log.Printf("PAIR CODE: %s", code)
				log.Println("==================================================")
				log.Println("Please verify this code on your WhatsApp (Linked Devices > Link with phone number)")
			}
		} else {
			// QR Code Mode
			log.Println("Not logged in. BOT_PHONE not set. Printing QR...")
			// PrintQR handles GetQRChannel AND Connect() internally to ensure no race condition
			waService.PrintQR(ctx)
		}
	} else {
		if err := waService.Connect(); err != nil {
			log.Fatalf("Failed to connect: %v", err)
		}
		log.Println("Client is already logged in.")
	}

	// 10. Background work: reminders and any timer left running before a restart
	go scheduler.Run(ctx)
	challengeTimer.Resume(ctx)

	if cfg.OwnerPhone == "" {
		log.Println("OWNER_PHONE not set. Anyone may chat with the bot and reminders are disabled.")
	}
	log.Println("Sparks is running... Press Ctrl+C to exit.")

	// 11. Wait for OS Signal
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	log.Println("Shutting down...")
	cancel()
	challengeTimer.Close()
	waService.Disconnect()
}
