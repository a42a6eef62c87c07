package service

import (
	"fmt"

	"soleus_remote/internal/protocol"
)

// CommandParams is the transport-agnostic command input: raw text for mode
// and fan speed, parsed and validated by the protocol package.
type CommandParams struct {
	Mode        string
	Temperature int
	FanSpeed    string
}

// EncodedCode is the result of one encode: the normalized command echoed
// back, the raw frame bytes and the Pronto code.
type EncodedCode struct {
	Mode        protocol.Mode     `json:"mode"`
	Temperature int               `json:"temperature,omitempty"`
	FanSpeed    protocol.FanSpeed `json:"fan_speed,omitempty"`
	Frame       string            `json:"frame"`
	ProntoData  string            `json:"pronto_data"`
	Tokens      int               `json:"tokens"`
}

// EncoderService is a thin stateless wrapper over the protocol package.
type EncoderService struct{}

func NewEncoderService() *EncoderService { return &EncoderService{} }

// Encode parses, validates and encodes a command. All failures wrap the
// protocol package's sentinel errors so callers can classify them.
func (s *EncoderService) Encode(p CommandParams) (EncodedCode, error) {
	mode, err := protocol.ParseMode(p.Mode)
	if err != nil {
		return EncodedCode{}, err
	}

	cmd := protocol.Command{
		Mode:        mode,
		Temperature: p.Temperature,
		FanSpeed:    protocol.FanSpeed(p.FanSpeed),
	}
	norm, err := cmd.Normalize()
	if err != nil {
		return EncodedCode{}, fmt.Errorf("encode %s: %w", mode, err)
	}

	frame := protocol.BuildFrame(norm)
	return EncodedCode{
		Mode:        norm.Mode,
		Temperature: norm.Temperature,
		FanSpeed:    norm.FanSpeed,
		Frame:       frame.String(),
		ProntoData:  protocol.Serialize(frame),
		Tokens:      protocol.TokenCount,
	}, nil
}

// Info returns the protocol reference sheet.
func (s *EncoderService) Info() protocol.Info {
	return protocol.Reference()
}
