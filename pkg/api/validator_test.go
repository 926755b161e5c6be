package api

import (
	"math"
	"testing"
)

func TestDirectionPayloadValidate(t *testing.T) {
	tests := []struct {
		name    string
		payload DirectionPayload
		wantErr bool
	}{
		{"Unit right", DirectionPayload{Dx: 1, Dy: 0}, false},
		{"Diagonal", DirectionPayload{Dx: -0.7, Dy: 0.7}, false},
		{"Long vector", DirectionPayload{Dx: 100, Dy: -50}, false},
		{"Zero", DirectionPayload{}, true},
		{"NaN", DirectionPayload{Dx: math.NaN(), Dy: 1}, true},
		{"Inf", DirectionPayload{Dx: 1, Dy: math.Inf(1)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.payload.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate(%+v) err = %v, wantErr %v", tt.payload, err, tt.wantErr)
			}
		})
	}
}

func TestPositionPayloadValidate(t *testing.T) {
	if err := (PositionPayload{X: 10, Y: -3}).Validate(); err != nil {
		t.Errorf("finite position must be valid: %v", err)
	}
	if err := (PositionPayload{X: math.Inf(-1), Y: 0}).Validate(); err == nil {
		t.Error("infinite position must be rejected")
	}
}
