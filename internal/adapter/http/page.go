package httpadapter

import (
	"bytes"
	"html/template"
	"log/slog"
	"net/http"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"solidarity-campaign/internal/core/domain"
)

var amountPrinter = message.NewPrinter(language.English)

var pageFuncs = template.FuncMap{
	"money": func(v int64) string {
		return amountPrinter.Sprintf("$%d", v)
	},
	"percent": func(v float64) string {
		return amountPrinter.Sprintf("%.2f", v)
	},
}

type landingView struct {
	Progress domain.CampaignProgress
	Videos   []domain.ResolvedVideo
}

var landingTemplate = template.Must(template.New("landing").Funcs(pageFuncs).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>Solidarity for Persecuted Christians</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; background: #FDFCF8; color: #0c0a09; margin: 0; }
        main { max-width: 960px; margin: 0 auto; padding: 3rem 1.5rem; }
        .bar { height: 2rem; background: #e7e5e4; border-radius: 999px; overflow: hidden; }
        .bar > div { height: 100%; background: #047857; }
        .totals { display: flex; justify-content: space-between; font-weight: 800; margin-top: .75rem; }
        .video { position: relative; padding-bottom: 56.25%; height: 0; margin: 2rem 0 .5rem; }
        .video iframe { position: absolute; inset: 0; width: 100%; height: 100%; border: 0; }
        .featured { border: 6px solid #10b981; border-radius: 1rem; overflow: hidden; }
        button { font-weight: 800; padding: 1rem 2rem; border-radius: 1rem; border: 0; background: #059669; color: #fff; cursor: pointer; }
        #referral-link { word-break: break-all; font-weight: 700; }
    </style>
</head>
<body>
<main>
    <h1>Solidarity for Persecuted Christians <small>— help the poor Worldwide.</small></h1>

    <section id="progress">
        <div class="bar"><div style="width: {{percent .Progress.Percent}}%"></div></div>
        <div class="totals">
            <span>{{money .Progress.TotalRaised}} RAISED</span>
            <span>{{money .Progress.Goal}} GOAL</span>
        </div>
    </section>

    <section id="videos">
        {{range .Videos}}
        <div class="video{{if .Entry.Featured}} featured{{end}}">
            <iframe src="{{.Reference.EmbedURL}}" title="{{.Entry.Title}}" loading="lazy"
                    allow="accelerometer; autoplay; clipboard-write; encrypted-media; gyroscope; picture-in-picture; web-share"
                    allowfullscreen></iframe>
        </div>
        <p><strong>{{.Entry.Title}}</strong></p>
        {{end}}
    </section>

    <section id="referral">
        <h2>Referral Influence Network</h2>
        <button id="activate" type="button">ACTIVATE YOUR LINK</button>
        <p id="referral-link" hidden></p>
        <button id="broadcast" type="button" hidden>BROADCAST TO WORLD</button>
    </section>
</main>
<script>
(function () {
    var link = document.getElementById("referral-link");
    var activate = document.getElementById("activate");
    var broadcast = document.getElementById("broadcast");

    function post(path, body) {
        return fetch(path, {
            method: "POST",
            headers: {"Content-Type": "application/json"},
            body: JSON.stringify(body || {})
        }).then(function (r) { return r.json(); });
    }

    activate.addEventListener("click", function () {
        post("/api/v1/referral").then(function (ref) {
            link.textContent = ref.link;
            link.hidden = false;
            activate.hidden = true;
            broadcast.hidden = false;
        });
    });

    broadcast.addEventListener("click", function () {
        var caps = {native: !!navigator.share, clipboard: !!(navigator.clipboard && navigator.clipboard.writeText)};
        post("/api/v1/referral/share", {capabilities: caps, referral: true}).then(function (res) {
            var msg = res.message;
            if (res.method === "native-share") {
                navigator.share({title: msg.title, text: msg.text, url: msg.url}).catch(function (err) {
                    post("/api/v1/referral/share/report", {method: res.method, reason: String(err)});
                });
            } else if (res.method === "clipboard-copy") {
                navigator.clipboard.writeText(msg.text).then(function () {
                    alert(res.notice);
                }, function (err) {
                    post("/api/v1/referral/share/report", {method: res.method, reason: String(err)});
                });
            }
        });
    });
})();
</script>
</body>
</html>
`))

// handleLandingPage renders the campaign page. When the request carries the
// checkout completion marker the total is incremented and the browser is
// sent to the bare path with 303 See Other, which replaces the marker URL
// instead of adding a history entry.
func (h *Handler) handleLandingPage(w http.ResponseWriter, r *http.Request) {
	page := h.svc.OpenPage(r.Context(), r.URL)
	if page.Redirect != "" {
		http.Redirect(w, r, page.Redirect, http.StatusSeeOther)
		return
	}

	var buf bytes.Buffer
	if err := landingTemplate.Execute(&buf, landingView{Progress: page.Progress, Videos: page.Videos}); err != nil {
		h.requestLogger(r).Error("render landing page error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = buf.WriteTo(w)
}
