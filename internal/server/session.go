package server

import (
	"context"
	"time"

	"github.com/zishang520/socket.io/v2/socket"

	"github.com/alexwulf/alloy-configurator/internal/ctxlog"
	"github.com/alexwulf/alloy-configurator/internal/document"
	"github.com/alexwulf/alloy-configurator/internal/model"
	"github.com/alexwulf/alloy-configurator/internal/patch"
	"github.com/alexwulf/alloy-configurator/internal/syntax"
	"github.com/alexwulf/alloy-configurator/internal/textbuf"
)

// session is the per-client editing state: one buffer, one synchronizer.
// It implements the synchronizer's sink and listener interfaces by
// forwarding publishes to the client.
type session struct {
	client *socket.Socket
	buf    *textbuf.Memory
	sync   *document.Synchronizer
}

// PublishMarkers implements document.MarkerSink.
func (s *session) PublishMarkers(markers []model.Marker) {
	s.client.Emit("markers", toMarkerPayloads(markers))
}

// PublishComponents implements document.ComponentListener.
func (s *session) PublishComponents(records []model.ComponentRecord, elapsed time.Duration) {
	s.client.Emit("components", componentsPayload{
		Components: toComponentPayloads(records),
		ElapsedMS:  elapsed.Milliseconds(),
	})
}

func (s *Server) handleConnection(ctx context.Context, client *socket.Socket) {
	logger := ctxlog.FromContext(ctx).With("sid", client.Id())
	logger.Info("Editing session connected.")

	sess := &session{client: client, buf: textbuf.NewMemory("")}
	parser := syntax.NewParser(s.lang)
	sess.sync = document.New(ctx, parser, sess.buf, s.reg,
		document.WithSink(sess),
		document.WithListener(sess),
	)

	client.On("document/set", func(args ...any) {
		if len(args) == 0 {
			return
		}
		text, ok := args[0].(string)
		if !ok {
			logger.Warn("Ignoring document/set with non-string payload.")
			return
		}
		sess.buf.SetText(text)
		sess.sync.OnTextChanged(ctx)
	})

	client.On("component/insert", func(args ...any) {
		if len(args) == 0 {
			return
		}
		var p blockPayload
		if err := decodePayload(args[0], &p); err != nil {
			logger.Warn("Rejected insert intent.", "error", err)
			client.Emit("edit/error", err.Error())
			return
		}
		if err := patch.Insert(sess.buf, p.toBlock()); err != nil {
			logger.Warn("Insert patch failed.", "error", err)
			client.Emit("edit/error", err.Error())
			return
		}
		sess.afterEdit(ctx)
	})

	client.On("component/replace", func(args ...any) {
		if len(args) == 0 {
			return
		}
		var p replacePayload
		if err := decodePayload(args[0], &p); err != nil {
			logger.Warn("Rejected replace intent.", "error", err)
			client.Emit("edit/error", err.Error())
			return
		}
		records := sess.sync.Records()
		if p.Index < 0 || p.Index >= len(records) {
			logger.Warn("Replace intent addressed a superseded component.", "index", p.Index)
			client.Emit("edit/error", "component index out of range")
			return
		}
		if err := patch.Replace(sess.buf, p.Block.toBlock(), p.OldLabel, records[p.Index].Node); err != nil {
			logger.Warn("Replace patch failed.", "error", err)
			client.Emit("edit/error", err.Error())
			return
		}
		sess.afterEdit(ctx)
	})

	client.On("disconnect", func(...any) {
		logger.Info("Editing session disconnected.")
	})
}

// afterEdit pushes the patched text back to the client and re-runs the
// pipeline, completing the structured-edit loop.
func (s *session) afterEdit(ctx context.Context) {
	s.client.Emit("document", s.buf.Text())
	s.sync.OnTextChanged(ctx)
}
