package diagnostics

import "github.com/Johnsonbros/JohnsonBros.com-sub004/pkg/tooldiag"

type DiagnosticsRegistry interface {
	Snapshot(topN int) tooldiag.Snapshot
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
