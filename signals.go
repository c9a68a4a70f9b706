package pancake

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for serialization events.
var (
	SignalRecordRegistered  = capitan.NewSignal("pancake.record.registered", "Record serializer built")
	SignalSerializeComplete = capitan.NewSignal("pancake.serialize.complete", "Serialization finished")
	SignalNamespaceBuilt    = capitan.NewSignal("pancake.namespace.built", "Namespace constructed from mapping")
	SignalEncodeComplete    = capitan.NewSignal("pancake.encode.complete", "Rendering finished")
)

// Keys for typed event data.
var (
	KeyTypeName    = capitan.NewStringKey("type_name")
	KeyKind        = capitan.NewStringKey("kind")
	KeyContentType = capitan.NewStringKey("content_type")
	KeyFieldCount  = capitan.NewIntKey("field_count")
	KeyKeyCount    = capitan.NewIntKey("key_count")
	KeySize        = capitan.NewIntKey("size")
	KeyDuration    = capitan.NewDurationKey("duration")
	KeyError       = capitan.NewErrorKey("error")
)

// emitRecordRegistered emits an event when a record serializer is built.
func emitRecordRegistered(ctx context.Context, typeName string, fields int) {
	capitan.Emit(ctx, SignalRecordRegistered,
		KeyTypeName.Field(typeName),
		KeyFieldCount.Field(fields),
	)
}

// emitSerializeComplete emits an event when a serialization finishes.
func emitSerializeComplete(ctx context.Context, kind, typeName string, keys int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyKind.Field(kind),
		KeyTypeName.Field(typeName),
		KeyKeyCount.Field(keys),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalSerializeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalSerializeComplete, fields...)
	}
}

// emitNamespaceBuilt emits an event when a namespace is built from a
// mapping.
func emitNamespaceBuilt(ctx context.Context, keys int) {
	capitan.Emit(ctx, SignalNamespaceBuilt,
		KeyKeyCount.Field(keys),
	)
}

// emitEncodeComplete emits an event when rendering finishes.
func emitEncodeComplete(ctx context.Context, contentType string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalEncodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalEncodeComplete, fields...)
	}
}
