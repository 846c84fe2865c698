package walkthrough

import "go.uber.org/zap"

// logger receives debug and warning output. Silent until SetLogger is called.
var logger = zap.NewNop()

// SetLogger routes package logging to l. A nil l silences logging.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// Logger returns the package logger.
func Logger() *zap.Logger {
	return logger
}

func nodeFields(n *Node) []zap.Field {
	return []zap.Field{
		zap.String("node", n.Name),
		zap.Uint32("id", n.ID),
	}
}
