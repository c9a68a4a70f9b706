package pancake

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestEmitRecordRegistered(_ *testing.T) {
	// Should not panic
	emitRecordRegistered(context.Background(), "TestType", 3)
}

func TestEmitSerializeComplete_Success(_ *testing.T) {
	emitSerializeComplete(context.Background(), "record", "TestType", 4, 100*time.Millisecond, nil)
}

func TestEmitSerializeComplete_Error(_ *testing.T) {
	emitSerializeComplete(context.Background(), "bag", "TestType", 0, 100*time.Millisecond, errors.New("test error"))
}

func TestEmitNamespaceBuilt(_ *testing.T) {
	emitNamespaceBuilt(context.Background(), 2)
}

func TestEmitEncodeComplete_Success(_ *testing.T) {
	emitEncodeComplete(context.Background(), "application/json", 256, 100*time.Millisecond, nil)
}

func TestEmitEncodeComplete_Error(_ *testing.T) {
	emitEncodeComplete(context.Background(), "application/json", 0, 100*time.Millisecond, errors.New("test error"))
}

func TestSignalVariables(t *testing.T) {
	// Verify signals are properly initialized
	signals := []struct {
		name   string
		signal interface{}
	}{
		{"SignalRecordRegistered", SignalRecordRegistered},
		{"SignalSerializeComplete", SignalSerializeComplete},
		{"SignalNamespaceBuilt", SignalNamespaceBuilt},
		{"SignalEncodeComplete", SignalEncodeComplete},
	}

	for _, s := range signals {
		if s.signal == nil {
			t.Errorf("%s is nil", s.name)
		}
	}
}

func TestKeyVariables(t *testing.T) {
	// Verify keys are properly initialized
	keys := []struct {
		name string
		key  interface{}
	}{
		{"KeyTypeName", KeyTypeName},
		{"KeyKind", KeyKind},
		{"KeyContentType", KeyContentType},
		{"KeyFieldCount", KeyFieldCount},
		{"KeyKeyCount", KeyKeyCount},
		{"KeySize", KeySize},
		{"KeyDuration", KeyDuration},
		{"KeyError", KeyError},
	}

	for _, k := range keys {
		if k.key == nil {
			t.Errorf("%s is nil", k.name)
		}
	}
}
