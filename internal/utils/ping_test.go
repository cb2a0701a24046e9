package utils

import (
	"net"
	"testing"
	"time"
)

func TestPingService(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Failed to listen: %v", err)
	}
	defer ln.Close()

	if err := PingService("http://"+ln.Addr().String(), time.Second); err != nil {
		t.Errorf("Expected reachable service, got %v", err)
	}
}

func TestPingServiceUnreachable(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Failed to listen: %v", err)
	}
	addr := ln.Addr().String()
	ln.Close()

	if err := PingService("http://"+addr, 500*time.Millisecond); err == nil {
		t.Error("Expected error for closed port")
	}
}

func TestPingServiceInvalidURL(t *testing.T) {
	if err := PingService("://bad", time.Second); err == nil {
		t.Error("Expected error for invalid URL")
	}
}
