package wa

import (
	"context"
	"fmt"
	"os"

	"github.com/mdp/qrterminal"
	"go.mau.fi/whatsmeow"
	"go.mau.fi/whatsmeow/store"
	"go.mau.fi/whatsmeow/store/sqlstore"
	"go.mau.fi/whatsmeow/types/events"
	walog "go.mau.fi/whatsmeow/util/log"
	_ "modernc.org/sqlite"
)

type MessageHandler func(ctx context.Context, client *whatsmeow.Client, evt *events.Message)

// Service owns the linked-device session the bot talks through.
type Service struct {
	client         *whatsmeow.Client
	dbPath         string
	log            walog.Logger
	messageHandler MessageHandler
}

func NewService(dbPath string, logger walog.Logger) *Service {
	return &Service{
		dbPath: dbPath,
		log:    logger,
	}
}

// Initialize opens the device store next to the app's own tables. It does
// not connect.
func (s *Service) Initialize(ctx context.Context) error {
	dbAddress := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", s.dbPath)
	container, err := sqlstore.New(ctx, "sqlite", dbAddress, s.log.Sub("Store"))
	if err != nil {
		return fmt.Errorf("failed to initialize device store: %w", err)
	}

	devices, err := container.GetAllDevices(ctx)
	if err != nil {
		return fmt.Errorf("failed to get devices: %w", err)
	}

	var device *store.Device
	if len(devices) > 0 {
		device = devices[0]
	} else {
		device = container.NewDevice()
	}

	s.client = whatsmeow.NewClient(device, s.log.Sub("Client"))
	s.client.AddEventHandler(s.handleEvent)

	return nil
}

func (s *Service) Connect() error {
	if s.client == nil {
		return fmt.Errorf("client not initialized")
	}
	if s.client.IsConnected() {
		return nil
	}
	return s.client.Connect()
}

func (s *Service) Disconnect() {
	if s.client != nil {
		s.client.Disconnect()
	}
}

func (s *Service) SetMessageHandler(handler MessageHandler) {
	s.messageHandler = handler
}

func (s *Service) handleEvent(evt interface{}) {
	switch v := evt.(type) {
	case *events.Message:
		if s.messageHandler != nil {
			go s.messageHandler(context.Background(), s.client, v)
		}
	case *events.Connected:
		s.log.Infof("Connected")
	case *events.LoggedOut:
		s.log.Warnf("Logged out: %v", v.Reason)
	}
}

func (s *Service) GetClient() *whatsmeow.Client {
	return s.client
}

func (s *Service) IsLoggedIn() bool {
	return s.client != nil && s.client.Store.ID != nil
}

// Pair requests a phone pairing code. The client must already be connected.
func (s *Service) Pair(ctx context.Context, phone string) (string, error) {
	if s.IsLoggedIn() {
		return "", fmt.Errorf("already logged in")
	}
	if !s.client.IsConnected() {
		return "", fmt.Errorf("client not connected")
	}

	code, err := s.client.PairPhone(ctx, phone, true, whatsmeow.PairClientChrome, "Chrome (Linux)")
	if err != nil {
		return "", err
	}
	return code, nil
}

// PrintQR connects and renders login codes until the QR channel closes.
func (s *Service) PrintQR(ctx context.Context) {
	if s.IsLoggedIn() {
		return
	}

	qrChan, err := s.client.GetQRChannel(ctx)
	if err != nil {
		s.log.Errorf("Failed to get QR channel: %v", err)
		return
	}
	if err := s.client.Connect(); err != nil {
		s.log.Errorf("Failed to connect for QR: %v", err)
		return
	}
	for evt := range qrChan {
		if evt.Event == "code" {
			fmt.Println("QR Code:", evt.Code)
			qrterminal.GenerateHalfBlock(evt.Code, qrterminal.L, os.Stdout)
		} else {
			s.log.Infof("Login event: %s", evt.Event)
		}
	}
}
