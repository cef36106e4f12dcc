package server

import (
	"bufio"
	"io"
	"net"
	"time"

	"github.com/nikmy/intervald/internal/metrics"
	"github.com/nikmy/intervald/internal/protocol"
	"github.com/nikmy/intervald/pkg/errors"
	"github.com/nikmy/intervald/pkg/logger"
)

// worker serves a single connection: it reads a line, validates it,
// executes it against the shared index and writes the reply, until the
// client goes away.
type worker struct {
	conn  net.Conn
	index index
	rec   recorder
	log   logger.Logger

	bufferSize   int
	readTimeout  time.Duration
	writeTimeout time.Duration
}

func (w *worker) Run() {
	w.rec.ConnOpened()
	defer w.rec.ConnClosed()

	defer func() {
		if err := w.conn.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
			w.log.Debug(errors.WrapFail(err, "close connection"))
		}
	}()

	w.log.Debugf("new connection from %s", w.conn.RemoteAddr())

	reader := bufio.NewReaderSize(w.conn, w.bufferSize)
	for {
		if w.readTimeout > 0 {
			_ = w.conn.SetReadDeadline(time.Now().Add(w.readTimeout))
		}

		line, readErr := reader.ReadString('\n')
		if line != "" {
			if err := w.handle(line); err != nil {
				w.log.Warn(errors.WrapFailf(err, "reply to %s", w.conn.RemoteAddr()))
				return
			}
		}

		if readErr != nil {
			w.logReadErr(readErr)
			return
		}
	}
}

func (w *worker) handle(line string) error {
	cmd, reply, ok := protocol.Parse(line)
	if !ok {
		if reply == "" {
			return nil
		}
		w.rec.Command(string(cmd.Verb), metrics.ResultRejected)
		return w.write(reply)
	}

	reply, result, err := execute(w.index, cmd)
	if err != nil {
		w.log.Error(err)
	}
	w.rec.Command(string(cmd.Verb), result)

	return w.write(reply)
}

func (w *worker) write(reply protocol.Reply) error {
	if w.writeTimeout > 0 {
		_ = w.conn.SetWriteDeadline(time.Now().Add(w.writeTimeout))
	}

	_, err := w.conn.Write(reply.Bytes())
	return err
}

func (w *worker) logReadErr(err error) {
	if errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed) {
		w.log.Debugf("connection from %s closed", w.conn.RemoteAddr())
		return
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		w.log.Infof("connection from %s idle for %s, closing", w.conn.RemoteAddr(), w.readTimeout)
		return
	}

	w.log.Warn(errors.WrapFailf(err, "read from %s", w.conn.RemoteAddr()))
}
