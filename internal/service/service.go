package service

import (
	"context"
	"time"

	soleus "soleus_remote"
	"soleus_remote/internal/protocol"
	"soleus_remote/internal/repository"
)

type Authorization interface {
	SignUp(username, password string) (int, error)
	GenerateToken(username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Encoder turns semantic AC commands into Pronto IR codes.
type Encoder interface {
	Encode(p CommandParams) (EncodedCode, error)
	Info() protocol.Info
}

// Catalog exposes the full enumerated button set and its JSON export.
type Catalog interface {
	Entries() []protocol.CatalogEntry
	ExportJSON(path string) (int, error)
}

// Capture ingests Pronto codes observed in a device's log stream and
// clusters repeats into captured buttons.
type Capture interface {
	Bootstrap(ctx context.Context) error
	Observe(ctx context.Context, pronto string, at time.Time) (*soleus.CapturedButton, error)
	List(ctx context.Context) ([]soleus.CapturedButton, error)
	Status() CaptureStatus
}

// Transmitter pushes an encoded Pronto code to the IR transmitter peripheral.
type Transmitter interface {
	Transmit(ctx context.Context, pronto string) error
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Encoder
	Catalog
	Capture
	Transmitter
	Authorization
}

// Config carries the knobs the sub-services need beyond their repositories.
type Config struct {
	TransmitURL string        // device endpoint accepting {"pronto_data": ...}; empty disables transmit
	SigningKey  string        // JWT signing secret
	Capture     CaptureConfig // clustering knobs, zero values mean defaults
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, cfg Config) *Service {
	return &Service{
		Encoder:       NewEncoderService(),
		Catalog:       NewCatalogService(),
		Capture:       NewCaptureService(repos.Captures, cfg.Capture),
		Transmitter:   NewHTTPTransmitter(cfg.TransmitURL),
		Authorization: NewAuthService(repos.Auth, cfg.SigningKey),
	}
}
