// Package slp implements the Minecraft Server List Ping, the status query
// clients perform to populate the multiplayer server list. The status
// document it returns carries the legacy-formatted text this module parses.
package slp

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// DefaultPort is the port servers listen on when none is given.
const DefaultPort = 25565

const (
	handshakePacketID = 0x00
	statusPacketID    = 0x00
	pingPacketID      = 0x01

	// Next-state value selecting the status flow in the handshake.
	statusState = 1

	// Protocol version sent in the handshake. Servers answer status
	// queries regardless of version, so we send "unknown".
	protocolUnknown = -1

	// Status documents larger than this are garbage, not JSON.
	maxPacketSize = 1 << 21

	dialTimeout = 5 * time.Second
)

// Version describes the server software.
type Version struct {
	Name     string `json:"name"`
	Protocol int    `json:"protocol"`
}

// Player is an entry in the player sample.
type Player struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// Players describes the server's player counts and an optional sample of
// who's online.
type Players struct {
	Max    int      `json:"max"`
	Online int      `json:"online"`
	Sample []Player `json:"sample"`
}

// Status is the decoded Server List Ping response.
type Status struct {
	Version     Version `json:"version"`
	Players     Players `json:"players"`
	Description Chat    `json:"description"`
	Favicon     string  `json:"favicon"`
}

// Ping performs a Server List Ping against addr and returns the decoded
// status along with the measured round-trip latency. addr may omit the
// port, in which case DefaultPort is used.
func Ping(addr string) (*Status, time.Duration, error) {
	host, port, err := splitAddr(addr)
	if err != nil {
		return nil, 0, err
	}

	conn, err := net.DialTimeout("tcp", net.JoinHostPort(host, strconv.Itoa(int(port))), dialTimeout)
	if err != nil {
		return nil, 0, fmt.Errorf("slp: dialing %s: %w", addr, err)
	}
	defer conn.Close()
	if err := conn.SetDeadline(time.Now().Add(dialTimeout)); err != nil {
		return nil, 0, fmt.Errorf("slp: setting deadline: %w", err)
	}

	handshake := appendVarInt(nil, protocolUnknown)
	handshake = appendString(handshake, host)
	handshake = append(handshake, byte(port>>8), byte(port))
	handshake = appendVarInt(handshake, statusState)
	if err := writePacket(conn, handshakePacketID, handshake); err != nil {
		return nil, 0, fmt.Errorf("slp: handshake: %w", err)
	}
	if err := writePacket(conn, statusPacketID, nil); err != nil {
		return nil, 0, fmt.Errorf("slp: status request: %w", err)
	}

	r := bufio.NewReader(conn)
	id, body, err := readPacket(r)
	if err != nil {
		return nil, 0, fmt.Errorf("slp: reading status: %w", err)
	}
	if id != statusPacketID {
		return nil, 0, fmt.Errorf("slp: unexpected packet id 0x%02x in status response", id)
	}
	raw, err := readString(bytes.NewBuffer(body))
	if err != nil {
		return nil, 0, fmt.Errorf("slp: reading status: %w", err)
	}
	var status Status
	if err := json.Unmarshal([]byte(raw), &status); err != nil {
		return nil, 0, fmt.Errorf("slp: decoding status: %w", err)
	}

	latency, err := measureLatency(conn, r)
	if err != nil {
		return nil, 0, err
	}
	return &status, latency, nil
}

func measureLatency(conn net.Conn, r *bufio.Reader) (time.Duration, error) {
	payload := make([]byte, 8)
	start := time.Now()
	binary.BigEndian.PutUint64(payload, uint64(start.UnixNano()))
	if err := writePacket(conn, pingPacketID, payload); err != nil {
		return 0, fmt.Errorf("slp: ping: %w", err)
	}
	id, body, err := readPacket(r)
	if err != nil {
		return 0, fmt.Errorf("slp: reading pong: %w", err)
	}
	latency := time.Since(start)
	if id != pingPacketID {
		return 0, fmt.Errorf("slp: unexpected packet id 0x%02x in pong", id)
	}
	if len(body) != 8 || !bytes.Equal(body, payload) {
		return 0, fmt.Errorf("slp: pong payload mismatch")
	}
	return latency, nil
}

func splitAddr(addr string) (string, uint16, error) {
	if !strings.Contains(addr, ":") {
		return addr, DefaultPort, nil
	}
	// A bare IPv6 literal has colons but no brackets; with a port it must
	// be written "[host]:port".
	if strings.Count(addr, ":") > 1 && !strings.Contains(addr, "[") {
		return addr, DefaultPort, nil
	}
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return "", 0, fmt.Errorf("slp: bad address %q: %w", addr, err)
	}
	port, err := strconv.ParseUint(portStr, 10, 16)
	if err != nil {
		return "", 0, fmt.Errorf("slp: bad port %q: %w", portStr, err)
	}
	return host, uint16(port), nil
}

// Packets are framed as: varint length, varint packet id, payload.

func writePacket(w io.Writer, id int32, payload []byte) error {
	body := appendVarInt(nil, id)
	body = append(body, payload...)
	frame := appendVarInt(nil, int32(len(body)))
	frame = append(frame, body...)
	_, err := w.Write(frame)
	return err
}

func readPacket(r *bufio.Reader) (int32, []byte, error) {
	length, err := readVarInt(r)
	if err != nil {
		return 0, nil, err
	}
	if length < 0 || length > maxPacketSize {
		return 0, nil, fmt.Errorf("packet length %d out of range", length)
	}
	body := make([]byte, length)
	if _, err := io.ReadFull(r, body); err != nil {
		return 0, nil, err
	}
	buf := bytes.NewBuffer(body)
	id, err := readVarInt(buf)
	if err != nil {
		return 0, nil, err
	}
	return id, buf.Bytes(), nil
}

func appendString(b []byte, s string) []byte {
	b = appendVarInt(b, int32(len(s)))
	return append(b, s...)
}

func readString(r *bytes.Buffer) (string, error) {
	length, err := readVarInt(r)
	if err != nil {
		return "", err
	}
	if length < 0 || length > maxPacketSize {
		return "", fmt.Errorf("string length %d out of range", length)
	}
	if r.Len() < int(length) {
		return "", io.ErrUnexpectedEOF
	}
	return string(r.Next(int(length))), nil
}

// VarInts are protobuf-style little-endian base-128, without zigzag;
// negative values always take five bytes.

func appendVarInt(b []byte, v int32) []byte {
	u := uint32(v)
	for u >= 0x80 {
		b = append(b, byte(u)|0x80)
		u >>= 7
	}
	return append(b, byte(u))
}

func readVarInt(r io.ByteReader) (int32, error) {
	var u uint32
	for shift := 0; shift < 35; shift += 7 {
		c, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		u |= uint32(c&0x7f) << shift
		if c&0x80 == 0 {
			return int32(u), nil
		}
	}
	return 0, fmt.Errorf("varint longer than 5 bytes")
}
