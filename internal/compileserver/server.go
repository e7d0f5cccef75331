// Package compileserver runs the compile daemon named in SPEC_FULL.md's
// domain stack: mcc serve accepts {request_id, source, function, debug}
// compile requests over a WebSocket connection and streams back
// {request_id, asm, error} JSON frames,
// scoped to "compile one unit, return assembly or diagnostics" rather than
// a full language server, unlike the teacher's own LSP/REPL daemons.
package compileserver

import (
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"mcc/internal/driver"
)

// Request is one compile unit sent by a client: inline source text plus
// the CommonFlags that would otherwise come from argv.
type Request struct {
	Source   string `json:"source"`
	Function string `json:"function,omitempty"`
	Debug    bool   `json:"debug,omitempty"`
}

// Response carries either the compiled assembly or a diagnostic message,
// tagged with the request ID the client sent so pipelined requests can be
// matched to their replies out of order.
type Response struct {
	RequestID string `json:"request_id"`
	Asm       string `json:"asm,omitempty"`
	Error     string `json:"error,omitempty"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Server holds the listen address for the compile endpoint at /compile.
type Server struct {
	Addr string
}

func New(addr string) *Server {
	return &Server{Addr: addr}
}

func (s *Server) ListenAndServe() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/compile", handleCompile)
	return http.ListenAndServe(s.Addr, mux)
}

func handleCompile(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("compileserver: upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	for {
		var req struct {
			RequestID string `json:"request_id"`
			Request
		}
		if err := conn.ReadJSON(&req); err != nil {
			return
		}
		if req.RequestID == "" {
			req.RequestID = uuid.NewString()
		}
		resp := compileOne(req.RequestID, req.Request)
		if err := conn.WriteJSON(resp); err != nil {
			return
		}
	}
}

func compileOne(requestID string, req Request) Response {
	tmp, err := writeTempSource(req.Source)
	if err != nil {
		return Response{RequestID: requestID, Error: err.Error()}
	}
	defer removeTempSource(tmp)

	res, err := driver.Build([]string{tmp}, &driver.CommonFlags{Function: req.Function, Debug: req.Debug})
	if err != nil {
		return Response{RequestID: requestID, Error: err.Error()}
	}
	return Response{RequestID: requestID, Asm: res.Asm}
}
