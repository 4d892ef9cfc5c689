package boundary

import "go.uber.org/zap"

var logger = zap.NewNop()

// SetLogger directs the package's diagnostics to l. The default logger
// discards everything; passing nil restores it.
//
// The only emission today is the reduced-accuracy warning of
// [Ellipse.ThetaExact].
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}
