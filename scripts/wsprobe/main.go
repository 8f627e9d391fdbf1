// Command wsprobe is a manual smoke client for the realtime endpoint:
// it joins a place, streams incoming comments, and posts lines from stdin.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/roams-app/roams-server/internal/proto"
)

func main() {
	if err := run(); err != nil {
		log.Printf("wsprobe: %v", err)
		os.Exit(1)
	}
}

func run() error {
	addr := flag.String("addr", "ws://localhost:3000/ws", "WebSocket address")
	user := flag.String("user", "cli-user", "display name")
	place := flag.String("place", "paris", "place to join (lower-cased)")
	flag.Parse()

	baseCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(baseCtx)
	defer cancel()

	normalized := strings.ToLower(*place)

	conn, _, err := websocket.Dial(ctx, *addr, nil)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "bye")

	joinPayload, err := json.Marshal(proto.JoinPlaceData{Place: normalized})
	if err != nil {
		return fmt.Errorf("marshal join: %w", err)
	}
	if err := wsjson.Write(ctx, conn, proto.Inbound{Type: proto.InboundTypeJoinPlace, Data: joinPayload}); err != nil {
		return fmt.Errorf("send join: %w", err)
	}

	fmt.Printf("Connected to %s as %s in place %s\n", *addr, *user, normalized)
	fmt.Println("Type comments and press Enter to send. Ctrl+C to exit.")

	go func() {
		defer cancel()
		readLoop(ctx, conn)
	}()

	writeLoop(ctx, conn, normalized, *user)

	stop()
	cancel()
	_ = conn.Close(websocket.StatusNormalClosure, "bye")
	return nil
}

func readLoop(ctx context.Context, conn *websocket.Conn) {
	for {
		var outbound proto.Outbound
		if err := wsjson.Read(ctx, conn, &outbound); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			switch websocket.CloseStatus(err) {
			case websocket.StatusNormalClosure, websocket.StatusGoingAway:
				return
			}
			log.Printf("read error: %v", err)
			return
		}

		switch outbound.Type {
		case proto.OutboundTypeNewComment:
			raw, err := json.Marshal(outbound.Data)
			if err != nil {
				log.Printf("marshal outbound data: %v", err)
				continue
			}
			var comment proto.CommentPayload
			if err := json.Unmarshal(raw, &comment); err != nil {
				log.Printf("unmarshal new_comment: %v", err)
				continue
			}
			fmt.Printf("[%s] #%d %s: %s (%s)\n", comment.Place, comment.ID, comment.User, comment.Message, comment.Timestamp)
		case proto.OutboundTypeError:
			if outbound.Error != nil {
				fmt.Printf("error: %s (%s)\n", outbound.Error.Msg, outbound.Error.Code)
			}
		default:
			fmt.Printf("type=%s data=%v\n", outbound.Type, outbound.Data)
		}
	}
}

func writeLoop(ctx context.Context, conn *websocket.Conn, place, user string) {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case line, ok := <-lines:
			if !ok {
				return
			}
			message := strings.TrimSpace(line)
			if message == "" {
				continue
			}

			payload, err := json.Marshal(proto.SendCommentData{Place: place, User: user, Message: message})
			if err != nil {
				log.Printf("marshal comment: %v", err)
				return
			}
			if err := wsjson.Write(ctx, conn, proto.Inbound{Type: proto.InboundTypeSendComment, Data: payload}); err != nil {
				log.Printf("send error: %v", err)
				return
			}
		}
	}
}
