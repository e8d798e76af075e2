package maskable

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for maskable events.
var (
	SignalSchemaDefined    = capitan.NewSignal("maskable.schema.defined", "Schema built for a host type")
	SignalRenderComplete   = capitan.NewSignal("maskable.render.complete", "Attribute template rendered")
	SignalRenderCached     = capitan.NewSignal("maskable.render.cached", "Attribute render served from cache")
	SignalAttributeWritten = capitan.NewSignal("maskable.attribute.written", "Attribute template replaced")
	SignalStoreComplete    = capitan.NewSignal("maskable.store.complete", "Store operation finished")
	SignalSendComplete     = capitan.NewSignal("maskable.send.complete", "Send operation finished")
	SignalLoadComplete     = capitan.NewSignal("maskable.load.complete", "Load operation finished")
)

// Keys for typed event data.
var (
	KeyTypeName       = capitan.NewStringKey("type_name")
	KeyAttribute      = capitan.NewStringKey("attribute")
	KeyAttributeCount = capitan.NewIntKey("attribute_count")
	KeyTokenCount     = capitan.NewIntKey("token_count")
	KeyContentType    = capitan.NewStringKey("content_type")
	KeySize           = capitan.NewIntKey("size")
	KeyDuration       = capitan.NewDurationKey("duration")
	KeyError          = capitan.NewErrorKey("error")
)

// emitSchemaDefined emits an event when a schema is built.
func emitSchemaDefined(ctx context.Context, typeName string, attributes int) {
	capitan.Emit(ctx, SignalSchemaDefined,
		KeyTypeName.Field(typeName),
		KeyAttributeCount.Field(attributes),
	)
}

// emitRenderComplete emits an event when a template is rendered on a cache miss.
func emitRenderComplete(ctx context.Context, typeName, attribute string, tokens int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyTypeName.Field(typeName),
		KeyAttribute.Field(attribute),
		KeyTokenCount.Field(tokens),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalRenderComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalRenderComplete, fields...)
	}
}

// emitRenderCached emits an event when a render is served from cache.
func emitRenderCached(ctx context.Context, typeName, attribute string) {
	capitan.Emit(ctx, SignalRenderCached,
		KeyTypeName.Field(typeName),
		KeyAttribute.Field(attribute),
	)
}

// emitAttributeWritten emits an event when a template is replaced.
func emitAttributeWritten(ctx context.Context, typeName, attribute string) {
	capitan.Emit(ctx, SignalAttributeWritten,
		KeyTypeName.Field(typeName),
		KeyAttribute.Field(attribute),
	)
}

// emitStoreComplete emits an event when store finishes.
func emitStoreComplete(ctx context.Context, contentType, typeName string, size int, duration time.Duration, err error) {
	fields := codecFields(contentType, typeName, size, duration)
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalStoreComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalStoreComplete, fields...)
	}
}

// emitSendComplete emits an event when send finishes.
func emitSendComplete(ctx context.Context, contentType, typeName string, size int, duration time.Duration, err error) {
	fields := codecFields(contentType, typeName, size, duration)
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalSendComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalSendComplete, fields...)
	}
}

// emitLoadComplete emits an event when load finishes.
func emitLoadComplete(ctx context.Context, contentType, typeName string, size int, duration time.Duration, err error) {
	fields := codecFields(contentType, typeName, size, duration)
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalLoadComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalLoadComplete, fields...)
	}
}

func codecFields(contentType, typeName string, size int, duration time.Duration) []capitan.Field {
	return []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
}
