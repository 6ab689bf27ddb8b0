package service

import "net/http"

// setupHTML replaces the entire UI while the session secret still holds its
// placeholder value. Mirrors the first-run guard of the configuration layer:
// no normal route is reachable until the operator supplies a secret.
const setupHTML = `<!doctype html>
<html lang="en">
<head><meta charset="utf-8"><title>Freundebuch: Setup Required</title></head>
<body>
<h1>Action Required: Configure Freundebuch</h1>
<p>This application needs a session secret before it can store accounts and friends. Follow these steps:</p>
<ol>
  <li>Generate a strong random secret, e.g. <code>openssl rand -hex 32</code>.</li>
  <li>Set it as the environment variable <code>FREUNDEBUCH_SESSION_SECRET</code>
      (a <code>.env</code> file next to the binary works too), or replace the
      placeholder value of <code>SessionSecret</code> in
      <code>internal/config/config.go</code> and rebuild.</li>
  <li>Optionally set <code>GEMINI_API_KEY</code> so gift suggestions work.</li>
  <li>Restart the server.</li>
</ol>
<p>After restarting, this page is replaced by the sign-in screen.</p>
</body>
</html>
`

// SetupHandler serves the static setup instructions for every path.
func SetupHandler() http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		rw.Header().Set("Content-Type", "text/html; charset=utf-8")
		rw.WriteHeader(http.StatusServiceUnavailable)
		_, _ = rw.Write([]byte(setupHTML))
	})
}
