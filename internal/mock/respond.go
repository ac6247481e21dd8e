package mock

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

type errorBody struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(errorBody{Error: message}); err != nil {
		slog.Warn("write error body failed", "err", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Warn("write json failed", "err", err)
	}
}

// writeFile emits a file-wrapped payload. Non-ASCII filenames go out in the
// RFC 5987 extended form; plain names use the quoted form.
func writeFile(w http.ResponseWriter, fileName, contentType string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	if isASCII(fileName) {
		w.Header().Set("Content-Disposition", `attachment; filename="`+fileName+`"`)
	} else {
		w.Header().Set("Content-Disposition", "attachment; filename*=UTF-8''"+encodeRFC5987(fileName))
	}
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		slog.Warn("write file payload failed", "err", err)
	}
}

// writeJSONFile wraps a JSON document in the file envelope the read
// endpoints use.
func writeJSONFile(w http.ResponseWriter, fileName string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "encode failed")
		return
	}
	writeFile(w, fileName, "application/octet-stream", data)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 127 {
			return false
		}
	}
	return true
}

func encodeRFC5987(s string) string {
	escaped := url.PathEscape(s)
	// PathEscape leaves a few sub-delims that RFC 5987 forbids.
	replacer := strings.NewReplacer("$", "%24", "&", "%26", "+", "%2B", ",", "%2C", ";", "%3B", "=", "%3D")
	return replacer.Replace(escaped)
}

func queryInt(r *http.Request, key string) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return 0
	}
	return v
}

func queryTime(r *http.Request, key string) time.Time {
	t, err := time.Parse(time.RFC3339, r.URL.Query().Get(key))
	if err != nil {
		return time.Time{}
	}
	return t
}
