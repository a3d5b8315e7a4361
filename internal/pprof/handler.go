package pprof

import (
	"expvar"
	"net"
	"net/http"
	"net/http/pprof"
	"strings"
)

// Handler exposes the runtime profiles under a prefix. Unless remote
// access is allowed, only loopback clients are served.
type Handler struct {
	mux         *http.ServeMux
	allowRemote bool
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !h.allowRemote && !isLoopback(r.RemoteAddr) {
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}

	h.mux.ServeHTTP(w, r)
}

func NewHandler(prefix string, allowRemote bool) *Handler {
	prefix = strings.TrimSuffix(prefix, "/")

	mux := &http.ServeMux{}

	mux.HandleFunc(prefix+"/", pprof.Index)
	mux.HandleFunc(prefix+"/cmdline", pprof.Cmdline)
	mux.HandleFunc(prefix+"/profile", pprof.Profile)
	mux.HandleFunc(prefix+"/symbol", pprof.Symbol)
	mux.HandleFunc(prefix+"/trace", pprof.Trace)
	mux.Handle(prefix+"/vars", expvar.Handler())

	mux.HandleFunc(prefix+"/{name}", func(w http.ResponseWriter, r *http.Request) {
		pprof.Handler(r.PathValue("name")).ServeHTTP(w, r)
	})

	return &Handler{mux: mux, allowRemote: allowRemote}
}

func isLoopback(remoteAddr string) bool {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		host = remoteAddr
	}

	ip := net.ParseIP(host)

	return ip != nil && ip.IsLoopback()
}

var _ http.Handler = &Handler{}
