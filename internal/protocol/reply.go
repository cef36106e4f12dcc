package protocol

import "strings"

// Reply is a single response line without its trailing newline.
type Reply string

const (
	ReplyOK             Reply = "OK"
	ReplyNoResults      Reply = "ERROR no results"
	ReplyInvalidCommand Reply = "ERROR invalid command"
	ReplyInvalidAdd     Reply = "ERROR invalid ADD command"
	ReplyInvalidDel     Reply = "ERROR invalid DEL command"
	ReplyInvalidFind    Reply = "ERROR invalid FIND command"
	ReplyBadLabel       Reply = "ERROR name arg must be a string"
)

// Labels encodes a FIND result. labels must already be sorted.
func Labels(labels []string) Reply {
	if len(labels) == 0 {
		return ReplyNoResults
	}
	return Reply(strings.Join(labels, " "))
}

// Bytes returns the reply as sent on the wire.
func (r Reply) Bytes() []byte {
	b := make([]byte, 0, len(r)+1)
	b = append(b, r...)
	return append(b, '\n')
}
