package packets

import "github.com/go-mcproto/mcproto/proto"

// StatusRequest has no fields: it simply asks the server for a StatusResponse.
type StatusRequest struct{}

func (p *StatusRequest) PacketName() string         { return "minecraft:status_request" }
func (p *StatusRequest) ReadFrom(r proto.Reader) error { return nil }
func (p *StatusRequest) WriteTo(w proto.Writer) error  { return nil }

// PingRequestStatus carries an opaque timestamp echoed back unchanged.
type PingRequestStatus struct {
	Timestamp int64
}

func (p *PingRequestStatus) PacketName() string { return "minecraft:ping_request" }

func (p *PingRequestStatus) ReadFrom(r proto.Reader) error {
	var err error
	p.Timestamp, err = proto.ReadI64(r)

	return err
}

func (p *PingRequestStatus) WriteTo(w proto.Writer) error {
	return proto.WriteI64(w, p.Timestamp)
}

// StatusResponse carries the server-list JSON document as a plain string
// (JSON parsing is a consumer concern; spec.md §1's Non-goals exclude
// packet semantics).
type StatusResponse struct {
	JSONResponse string
}

func (p *StatusResponse) PacketName() string { return "minecraft:status_response" }

func (p *StatusResponse) ReadFrom(r proto.Reader) error {
	var err error
	p.JSONResponse, err = proto.ReadString(r)

	return err
}

func (p *StatusResponse) WriteTo(w proto.Writer) error {
	return proto.WriteString(w, p.JSONResponse)
}

// PongResponseStatus echoes a PingRequestStatus's timestamp back.
type PongResponseStatus struct {
	Timestamp int64
}

func (p *PongResponseStatus) PacketName() string { return "minecraft:pong_response" }

func (p *PongResponseStatus) ReadFrom(r proto.Reader) error {
	var err error
	p.Timestamp, err = proto.ReadI64(r)

	return err
}

func (p *PongResponseStatus) WriteTo(w proto.Writer) error {
	return proto.WriteI64(w, p.Timestamp)
}

func init() {
	register(stateStatus, serverbound, "minecraft:status_request", func() Packet { return &StatusRequest{} })
	register(stateStatus, serverbound, "minecraft:ping_request", func() Packet { return &PingRequestStatus{} })
	register(stateStatus, clientbound, "minecraft:status_response", func() Packet { return &StatusResponse{} })
	register(stateStatus, clientbound, "minecraft:pong_response", func() Packet { return &PongResponseStatus{} })
}
