package proc

import (
	"fmt"
	"net"
	"net/http"

	"github.com/guhdeats/speedwagon/sys"
)

// StartHealthServer exposes the liveness endpoint deployment supervisors
// poll. It answers 200 on every path regardless of gateway state; a bind
// failure disables it with a warning instead of taking the bot down.
func StartHealthServer(port int) *http.Server {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		sys.LogWarn(sys.MsgHealthBindFail, port, err)
		return nil
	}

	srv := &http.Server{Handler: healthHandler()}
	go func() {
		if err := srv.Serve(listener); err != nil && err != http.ErrServerClosed {
			sys.LogWarn(sys.MsgHealthServeFail, err)
		}
	}()

	sys.LogHealth(sys.MsgHealthListening, port)
	return srv
}

func healthHandler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	return mux
}
