package http

import (
	"encoding/json"

	"github.com/roams-app/roams-server/internal/core"
	"github.com/roams-app/roams-server/internal/proto"
)

func inboundToCommand(inbound proto.Inbound) (*core.Command, *proto.Error, error) {
	switch inbound.Type {
	case proto.InboundTypeJoinPlace:
		var join proto.JoinPlaceData
		if err := json.Unmarshal(inbound.Data, &join); err != nil {
			return nil, nil, err
		}
		if join.Place == "" {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "place is required"}, nil
		}
		return &core.Command{
			Kind:  core.CommandJoinPlace,
			Place: join.Place,
		}, nil, nil
	case proto.InboundTypeLeavePlace:
		var leave proto.JoinPlaceData
		if err := json.Unmarshal(inbound.Data, &leave); err != nil {
			return nil, nil, err
		}
		if leave.Place == "" {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "place is required"}, nil
		}
		return &core.Command{
			Kind:  core.CommandLeavePlace,
			Place: leave.Place,
		}, nil, nil
	case proto.InboundTypeSendComment:
		var send proto.SendCommentData
		if err := json.Unmarshal(inbound.Data, &send); err != nil {
			return nil, nil, err
		}
		// Field presence is checked by the hub, which owns the
		// reject-don't-coerce policy for malformed posts.
		return &core.Command{
			Kind:    core.CommandSendComment,
			Place:   send.Place,
			User:    send.User,
			Message: send.Message,
		}, nil, nil
	default:
		return nil, &proto.Error{Code: "invalid_message", Msg: "unknown message type"}, nil
	}
}

func outboundFromEvent(event *core.Event) proto.Outbound {
	switch event.Kind {
	case core.EventNewComment:
		return proto.Outbound{
			Type: proto.OutboundTypeNewComment,
			Data: proto.CommentPayloadFrom(event.Comment),
		}
	default:
		return proto.Outbound{Type: proto.OutboundTypeError, Error: &proto.Error{Code: "unknown", Msg: "unknown event"}}
	}
}
