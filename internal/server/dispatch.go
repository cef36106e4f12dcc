package server

import (
	"github.com/nikmy/intervald/internal/intervals"
	"github.com/nikmy/intervald/internal/metrics"
	"github.com/nikmy/intervald/internal/protocol"
	"github.com/nikmy/intervald/pkg/errors"
)

// execute applies a validated command to the index. DEL ranges are
// inclusive on the wire and half-open in the index.
func execute(ix index, cmd protocol.Command) (protocol.Reply, string, error) {
	switch cmd.Verb {
	case protocol.VerbAdd:
		err := ix.Insert(cmd.Begin, cmd.End, cmd.Label)
		if err != nil {
			return protocol.ReplyInvalidAdd, metrics.ResultRejected, errors.WrapFailf(err, "insert [%d, %d)", cmd.Begin, cmd.End)
		}
		return protocol.ReplyOK, metrics.ResultOK, nil

	case protocol.VerbDel:
		var filters []intervals.Filter
		if cmd.HasLabel {
			filters = append(filters, intervals.ByLabel(cmd.Label))
		}
		ix.Chop(cmd.Begin, cmd.End+1, filters...)
		return protocol.ReplyOK, metrics.ResultOK, nil

	case protocol.VerbFind:
		var labels []string
		if cmd.HasEnd {
			labels = ix.Overlap(cmd.Begin, cmd.End)
		} else {
			labels = ix.Point(cmd.Begin)
		}
		if len(labels) == 0 {
			return protocol.ReplyNoResults, metrics.ResultEmpty, nil
		}
		return protocol.Labels(labels), metrics.ResultOK, nil
	}

	return protocol.ReplyInvalidCommand, metrics.ResultRejected, errors.Errorf("unexpected verb %q", cmd.Verb)
}
