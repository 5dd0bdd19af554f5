package main

import (
	"context"
	"net"
	"strconv"
	"testing"
	"time"
)

func TestServeReturnsListenError(t *testing.T) {
	busy, err := net.Listen("tcp", ":0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer busy.Close()

	t.Setenv("PORT", strconv.Itoa(busy.Addr().(*net.TCPAddr).Port))
	t.Setenv("WEATHER_LOCATIONS", "")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := serve(ctx); err == nil {
		t.Fatal("expected an error when the port is already in use")
	}
	if ctx.Err() != nil {
		t.Error("serve waited for the context instead of returning the listen error")
	}
}
