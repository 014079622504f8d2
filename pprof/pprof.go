package pprof

import (
	"net/http"
	_ "net/http/pprof"

	"go.uber.org/zap"
)

// StartPP serves the pprof handlers on addr in the background.
func StartPP(addr string) {
	go func() {
		err := http.ListenAndServe(addr, nil)
		if err != nil {
			zap.L().Error("pprof listener stopped", zap.String("addr", addr), zap.Error(err))
		}
	}()
}
