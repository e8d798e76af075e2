package maskable

import (
	"context"
	"time"
)

// Store marshals the host as held, so maskable attributes carry their raw
// templates. This is the persisted form.
func (r *Record[T]) Store(ctx context.Context, codec Codec) ([]byte, error) {
	start := time.Now()
	data, err := codec.Marshal(r.host)
	if err != nil {
		err = newCodecError(ErrMarshal, err)
	}
	emitStoreComplete(ctx, codec.ContentType(), r.schema.TypeName(), len(data), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Send marshals a copy of the host whose maskable attributes carry their
// rendered values. The host keeps its raw templates. A resolution error on
// any attribute aborts the send, and Host types must implement Cloner.
func (r *Record[T]) Send(ctx context.Context, codec Codec) ([]byte, error) {
	start := time.Now()
	data, err := r.send(codec)
	emitSendComplete(ctx, codec.ContentType(), r.schema.TypeName(), len(data), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (r *Record[T]) send(codec Codec) ([]byte, error) {
	if r.schema.plan.override && !hasCloner[T]() {
		return nil, newConfigError(ErrNoCloner, r.schema.TypeName(), "", "")
	}
	out := clone(r.host)
	access := newHostAccess(r.schema.plan, out)
	for _, name := range r.schema.order {
		rendered, err := r.attributes[name].Render()
		if err != nil {
			return nil, err
		}
		access.write(name, rendered)
	}

	data, err := codec.Marshal(out)
	if err != nil {
		return nil, newCodecError(ErrMarshal, err)
	}
	return data, nil
}

// Load unmarshals a stored host and binds it.
func (s *Schema[T]) Load(ctx context.Context, codec Codec, data []byte) (*Record[T], error) {
	start := time.Now()
	var host T
	err := codec.Unmarshal(data, &host)
	if err != nil {
		err = newCodecError(ErrUnmarshal, err)
	}
	emitLoadComplete(ctx, codec.ContentType(), s.TypeName(), len(data), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return s.Bind(&host), nil
}
