package node

import (
	"dmutex/internal/broadcast"
	dmutexpb "dmutex/internal/gen/api"
	"dmutex/internal/queue"
)

// requestToRecord converts a protobuf RequestMessage to an internal queue.Record.
func requestToRecord(pb *dmutexpb.RequestMessage) queue.Record {
	return queue.Record{
		Timestamp:  pb.Timestamp,
		ProcessID:  pb.ProcessId,
		ResourceID: pb.ResourceId,
	}
}

// releaseToRecord converts a protobuf ReleaseMessage to an internal queue.Record.
func releaseToRecord(pb *dmutexpb.ReleaseMessage) queue.Record {
	return queue.Record{
		Timestamp:  pb.Timestamp,
		ProcessID:  pb.ProcessId,
		ResourceID: pb.ResourceId,
	}
}

// recordToRequest converts an internal queue.Record to a protobuf RequestMessage.
func recordToRequest(rec queue.Record) *dmutexpb.RequestMessage {
	return &dmutexpb.RequestMessage{
		Timestamp:  rec.Timestamp,
		ProcessId:  rec.ProcessID,
		ResourceId: rec.ResourceID,
	}
}

// recordToRelease converts an internal queue.Record to a protobuf ReleaseMessage.
func recordToRelease(rec queue.Record) *dmutexpb.ReleaseMessage {
	return &dmutexpb.ReleaseMessage{
		Timestamp:  rec.Timestamp,
		ProcessId:  rec.ProcessID,
		ResourceId: rec.ResourceID,
	}
}

// replyToProto converts an internal broadcast.Reply to a protobuf ReplyMessage.
func replyToProto(r broadcast.Reply) *dmutexpb.ReplyMessage {
	pb := &dmutexpb.ReplyMessage{
		Timestamp: r.Timestamp,
		ProcessId: r.ProcessID,
		Granted:   r.Granted,
		Message:   r.Message,
	}
	if r.Pending != nil {
		pb.Pending = recordToRequest(*r.Pending)
	}
	return pb
}

// protoToReply converts a protobuf ReplyMessage to an internal broadcast.Reply.
func protoToReply(pb *dmutexpb.ReplyMessage) broadcast.Reply {
	if pb == nil {
		return broadcast.Reply{}
	}
	r := broadcast.Reply{
		Timestamp: pb.Timestamp,
		ProcessID: pb.ProcessId,
		Granted:   pb.Granted,
		Message:   pb.Message,
	}
	if pb.Pending != nil {
		pending := requestToRecord(pb.Pending)
		r.Pending = &pending
	}
	return r
}
