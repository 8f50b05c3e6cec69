package middleware

import (
	"net/netip"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/arklim/cinema-platform/internal/core/domain"
)

// TrustedPeers marks requests sent by another cinema service. The caller names itself in
// domain.PeerHeader, and the header only counts when the connection comes from one of cidrs.
// Must run after EnrichContext.
func TrustedPeers(cidrs []string, logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	prefixes := make([]netip.Prefix, 0, len(cidrs))
	for _, raw := range cidrs {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		prefix, err := netip.ParsePrefix(raw)
		if err != nil {
			logger.Warn("ignoring invalid trusted peer cidr", zap.String("cidr", raw), zap.Error(err))
			continue
		}
		prefixes = append(prefixes, prefix.Masked())
	}

	return func(c *gin.Context) {
		peer := strings.TrimSpace(c.GetHeader(domain.PeerHeader))
		if peer != "" && len(prefixes) > 0 {
			// RemoteIP ignores forwarding headers, which a client can forge.
			if addr, err := netip.ParseAddr(c.RemoteIP()); err == nil && containsAddr(prefixes, addr.Unmap()) {
				GetRequestContext(c).Peer = peer
			}
		}
		c.Next()
	}
}

// IsPeerCall reports whether TrustedPeers accepted the request as service traffic.
func IsPeerCall(c *gin.Context) bool {
	return GetRequestContext(c).Peer != ""
}

func containsAddr(prefixes []netip.Prefix, addr netip.Addr) bool {
	for _, prefix := range prefixes {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}
