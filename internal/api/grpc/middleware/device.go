package middleware

import (
	"context"
	"net"

	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"

	"github.com/dtroode/authgate-server/internal/model"
)

// DeviceFromContext describes the calling client from its user-agent
// metadata and peer address.
func DeviceFromContext(ctx context.Context) model.Device {
	var device model.Device
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get("user-agent"); len(values) > 0 {
			device.UserAgent = values[0]
		}
	}
	if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
		addr := p.Addr.String()
		if host, _, err := net.SplitHostPort(addr); err == nil {
			addr = host
		}
		device.IP = addr
	}
	return device
}
