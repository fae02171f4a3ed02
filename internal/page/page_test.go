package page

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/net/html"

	"github.com/five82/welcome/internal/catalog"
	"github.com/five82/welcome/internal/manifest"
)

const hostPage = `<!DOCTYPE html><html><head><title>t</title></head><body>
<p id="domain-info">Loading...</p>
<span data-section-icon="server"></span><span data-section-icon="nope">keep</span>
<div id="services-container"><div class="loading">Loading services...</div></div>
<div id="quickstart-container"><div>stale</div></div>
<div id="commands-container"></div>
<div id="error-toast" class="hidden fixed bottom-6"><span id="error-message"></span></div>
</body></html>`

type sourceFunc func(ctx context.Context) (*manifest.Manifest, error)

func (f sourceFunc) Fetch(ctx context.Context) (*manifest.Manifest, error) { return f(ctx) }

func staticSource(t *testing.T, body string) manifest.Source {
	t.Helper()
	m, err := manifest.Parse([]byte(body))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return sourceFunc(func(context.Context) (*manifest.Manifest, error) { return m, nil })
}

func mustDoc(t *testing.T, src string) *Document {
	t.Helper()
	doc, err := NewDocument([]byte(src))
	if err != nil {
		t.Fatalf("NewDocument: %v", err)
	}
	return doc
}

func renderString(t *testing.T, doc *Document) string {
	t.Helper()
	out, err := doc.Bytes()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	return string(out)
}

func cardsOf(doc *Document) []*html.Node {
	return findAll(doc.ByID(ServicesContainerID), func(n *html.Node) bool { return n.Data == "article" })
}

func byClass(root *html.Node, class string) []*html.Node {
	return findAll(root, func(n *html.Node) bool { return hasClass(n, class) })
}

func fields(card *html.Node) []string {
	var out []string
	for _, n := range findAll(card, func(n *html.Node) bool { _, ok := attr(n, "data-field"); return ok }) {
		v, _ := attr(n, "data-field")
		out = append(out, v)
	}
	return out
}

func TestLoad_CardsSortedByDisplayName(t *testing.T) {
	doc := mustDoc(t, hostPage)
	src := staticSource(t, `{"services":{
		"zeta-svc": {}, "Alpha": {}, "n8n": {}, "grafana": {}, "open-webui": {}
	}}`)

	res := (&Controller{Source: src}).Load(context.Background(), doc)
	if res.State != Rendered {
		t.Fatalf("State = %v, want rendered (err %v)", res.State, res.Err)
	}
	cards := cardsOf(doc)
	if len(cards) != 5 || res.Services != 5 {
		t.Fatalf("rendered %d cards (result %d), want 5", len(cards), res.Services)
	}
	want := []string{"Alpha", "grafana", "n8n", "open-webui", "zeta-svc"}
	for i, card := range cards {
		key, _ := attr(card, "data-service")
		if key != want[i] {
			t.Fatalf("card %d = %q, want %q (order %v)", i, key, want[i], want)
		}
	}
}

func TestLoad_EmptyOrAbsentServicesShowPlaceholder(t *testing.T) {
	for _, body := range []string{`{}`, `{"services":{}}`, `{"services":null}`} {
		t.Run(body, func(t *testing.T) {
			doc := mustDoc(t, hostPage)
			res := (&Controller{Source: staticSource(t, body)}).Load(context.Background(), doc)
			if res.State != Rendered {
				t.Fatalf("State = %v, want rendered", res.State)
			}
			if n := len(cardsOf(doc)); n != 0 {
				t.Fatalf("rendered %d cards, want 0", n)
			}
			if !strings.Contains(textContent(doc.ByID(ServicesContainerID)), NoServicesMessage) {
				t.Fatalf("placeholder missing")
			}
			if strings.Contains(renderString(t, doc), "Loading services") {
				t.Fatalf("container was not cleared")
			}
		})
	}
}

func TestLoad_Non2xxRendersErrorPanelAndDefaults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()
	client, err := manifest.NewClient(srv.URL + "/data.json")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	doc := mustDoc(t, hostPage)
	res := (&Controller{Source: client}).Load(context.Background(), doc)
	if res.State != Error {
		t.Fatalf("State = %v, want error", res.State)
	}
	var statusErr *manifest.StatusError
	if !errors.As(res.Err, &statusErr) || statusErr.Code != http.StatusInternalServerError {
		t.Fatalf("Err = %v, want StatusError 500", res.Err)
	}

	services := doc.ByID(ServicesContainerID)
	alerts := findAll(services, func(n *html.Node) bool { v, _ := attr(n, "role"); return v == "alert" })
	if len(alerts) != 1 {
		t.Fatalf("found %d alert panels, want 1", len(alerts))
	}
	text := textContent(alerts[0])
	if !strings.Contains(text, ErrorPanelTitle) || !strings.Contains(text, ErrorPanelDetail) {
		t.Fatalf("panel text = %q", text)
	}
	if strings.Contains(text, "500") {
		t.Fatalf("panel leaks technical detail: %q", text)
	}
	if steps := byClass(doc.ByID(QuickStartContainerID), "quickstart-step"); len(steps) != 4 || res.QuickStart != 4 {
		t.Fatalf("rendered %d quick-start steps, want 4", len(steps))
	}
	toast := doc.ByID(ErrorToastID)
	if hasClass(toast, "hidden") || !hasClass(toast, "fixed") {
		t.Fatalf("toast classes = %v", classes(toast))
	}
	if textContent(doc.ByID(ErrorMessageID)) != ErrorToastMessage {
		t.Fatalf("toast message = %q", textContent(doc.ByID(ErrorMessageID)))
	}
	if got := textContent(doc.ByID(DomainInfoID)); got != "Loading..." {
		t.Fatalf("banner changed on error: %q", got)
	}
}

func TestLoad_MalformedManifestIsError(t *testing.T) {
	doc := mustDoc(t, hostPage)
	src := sourceFunc(func(context.Context) (*manifest.Manifest, error) {
		return manifest.Parse([]byte("{oops"))
	})
	if res := (&Controller{Source: src}).Load(context.Background(), doc); res.State != Error {
		t.Fatalf("State = %v, want error", res.State)
	}
	if res := (&Controller{}).Load(context.Background(), mustDoc(t, hostPage)); res.State != Error {
		t.Fatalf("nil source State = %v, want error", res.State)
	}
}

func TestLoad_MalformedSubFieldsKeepOtherCards(t *testing.T) {
	tests := []struct {
		name string
		svc  string
	}{
		{name: "numeric password", svc: `{"credentials":{"username":"admin","password":12345}}`},
		{name: "string credentials", svc: `{"hostname":"svc.example.com","credentials":"none"}`},
		{name: "array extra", svc: `{"extra":["a"]}`},
		{name: "quoted step number", svc: `{}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "data.json")
			body := `{"services":{"n8n":{"hostname":"n8n.example.com"},"svc":` + tt.svc + `},"quick_start":[{"step":"1","title":"Open n8n"}]}`
			if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}
			doc := mustDoc(t, hostPage)
			res := (&Controller{Source: &manifest.File{Path: path}}).Load(context.Background(), doc)
			if res.State != Rendered {
				t.Fatalf("State = %v (err %v), want rendered", res.State, res.Err)
			}
			if n := len(cardsOf(doc)); n != 2 {
				t.Fatalf("rendered %d cards, want 2", n)
			}
			out := renderString(t, doc)
			if strings.Contains(out, "Unable to load service data") {
				t.Fatalf("error panel shown")
			}
			if !strings.Contains(out, `href="https://n8n.example.com"`) {
				t.Fatalf("well-formed card lost")
			}
			if n := len(byClass(doc.ByID(QuickStartContainerID), "quickstart-step")); n != 1 {
				t.Fatalf("rendered %d steps, want 1", n)
			}
		})
	}
}

func TestLoad_CommandsRenderedBeforeFetch(t *testing.T) {
	doc := mustDoc(t, hostPage)
	var seen int
	src := sourceFunc(func(context.Context) (*manifest.Manifest, error) {
		seen = len(byClass(doc.ByID(CommandsContainerID), "command-entry"))
		return nil, errors.New("offline")
	})
	(&Controller{Source: src}).Load(context.Background(), doc)
	if seen != len(catalog.Commands()) {
		t.Fatalf("commands present during fetch = %d, want %d", seen, len(catalog.Commands()))
	}
	for _, entry := range byClass(doc.ByID(CommandsContainerID), "command-entry") {
		buttons := findAll(entry, func(n *html.Node) bool { _, ok := attr(n, "data-copy"); return ok })
		if len(buttons) != 1 {
			t.Fatalf("command entry has %d copy buttons, want 1", len(buttons))
		}
	}
}

func TestLoad_EndToEndSingleService(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"services":{"n8n":{"hostname":"n8n.example.com"}}, "quick_start":[]}`))
	}))
	defer srv.Close()
	client, err := manifest.NewClient(srv.URL + "/data.json")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	doc := mustDoc(t, hostPage)
	res := (&Controller{Source: client}).Load(context.Background(), doc)
	if res.State != Rendered {
		t.Fatalf("State = %v (%v)", res.State, res.Err)
	}
	cards := cardsOf(doc)
	if len(cards) != 1 {
		t.Fatalf("rendered %d cards, want 1", len(cards))
	}
	title := byClass(cards[0], "service-name")
	if len(title) != 1 || textContent(title[0]) != "n8n" {
		t.Fatalf("card title = %q", textContent(title[0]))
	}
	links := byClass(cards[0], "service-link")
	if len(links) != 1 {
		t.Fatalf("found %d external links, want 1", len(links))
	}
	if href, _ := attr(links[0], "href"); href != "https://n8n.example.com" {
		t.Fatalf("href = %q", href)
	}
	if target, _ := attr(links[0], "target"); target != "_blank" {
		t.Fatalf("target = %q", target)
	}
	if rel, _ := attr(links[0], "rel"); rel != "noopener" {
		t.Fatalf("rel = %q", rel)
	}
	if n := len(byClass(cards[0], "service-details")); n != 0 {
		t.Fatalf("found %d detail sections, want none", n)
	}
	steps := byClass(doc.ByID(QuickStartContainerID), "quickstart-step")
	if len(steps) != 4 {
		t.Fatalf("rendered %d steps, want 4 defaults", len(steps))
	}
	if !strings.Contains(textContent(steps[0]), "Log into n8n") {
		t.Fatalf("first default step = %q", textContent(steps[0]))
	}
}

func TestLoad_MissingContainersAreNoops(t *testing.T) {
	doc := mustDoc(t, `<html><body><div id="services-container"></div></body></html>`)
	res := (&Controller{Source: staticSource(t, `{"services":{"n8n":{}}}`)}).Load(context.Background(), doc)
	if res.State != Rendered || res.Services != 1 || res.QuickStart != 0 {
		t.Fatalf("Result = %#v", res)
	}

	errDoc := mustDoc(t, `<html><body></body></html>`)
	src := sourceFunc(func(context.Context) (*manifest.Manifest, error) { return nil, errors.New("x") })
	if res := (&Controller{Source: src}).Load(context.Background(), errDoc); res.State != Error {
		t.Fatalf("State = %v, want error", res.State)
	}
}

func TestLoad_RebuildsInsteadOfAppending(t *testing.T) {
	doc := mustDoc(t, hostPage)
	c := &Controller{Source: staticSource(t, `{"services":{"n8n":{},"redis":{}}}`)}
	c.Load(context.Background(), doc)
	c.Load(context.Background(), doc)
	if n := len(cardsOf(doc)); n != 2 {
		t.Fatalf("rendered %d cards after two loads, want 2", n)
	}
	if n := len(byClass(doc.ByID(CommandsContainerID), "command-entry")); n != len(catalog.Commands()) {
		t.Fatalf("rendered %d commands after two loads", n)
	}
	if strings.Contains(textContent(doc.ByID(QuickStartContainerID)), "stale") {
		t.Fatalf("quick-start container was not cleared")
	}
}

func TestLoad_BannerAndQuickStart(t *testing.T) {
	doc := mustDoc(t, hostPage)
	src := staticSource(t, `{
		"domain": "example.com",
		"generated_at": "2025-12-13 10:11:12",
		"quick_start": [{"step": 1, "title": "Open <n8n>", "description": "First"}]
	}`)
	(&Controller{Source: src}).Load(context.Background(), doc)
	if got := textContent(doc.ByID(DomainInfoID)); got != "Domain: example.com | Generated: 2025-12-13 10:11:12" {
		t.Fatalf("banner = %q", got)
	}
	steps := byClass(doc.ByID(QuickStartContainerID), "quickstart-step")
	if len(steps) != 1 {
		t.Fatalf("rendered %d steps, want 1", len(steps))
	}
	if out := renderString(t, doc); !strings.Contains(out, "Open &lt;n8n&gt;") {
		t.Fatalf("step title not escaped")
	}
}

func TestBanner_PartialFields(t *testing.T) {
	tests := []struct {
		m    *manifest.Manifest
		want string
	}{
		{m: nil, want: ""},
		{m: &manifest.Manifest{}, want: ""},
		{m: &manifest.Manifest{Domain: "a.io"}, want: "Domain: a.io"},
		{m: &manifest.Manifest{GeneratedAt: "soon"}, want: "Generated: soon"},
	}
	for _, tt := range tests {
		if got := Banner(tt.m); got != tt.want {
			t.Fatalf("Banner(%#v) = %q, want %q", tt.m, got, tt.want)
		}
	}
}

func TestInjectSectionIcons(t *testing.T) {
	doc := mustDoc(t, hostPage)
	InjectSectionIcons(doc.Root())
	spans := findAll(doc.Root(), func(n *html.Node) bool { _, ok := attr(n, "data-section-icon"); return ok })
	if len(spans) != 2 {
		t.Fatalf("found %d icon slots", len(spans))
	}
	if spans[0].FirstChild == nil || spans[0].FirstChild.Data != "svg" {
		t.Fatalf("server icon not injected")
	}
	if textContent(spans[1]) != "keep" {
		t.Fatalf("unknown icon slot was modified")
	}
}

func TestEnableCelebration(t *testing.T) {
	doc := mustDoc(t, hostPage)
	doc.EnableCelebration(CelebrateLocal, 800*time.Millisecond)
	body := doc.Body()
	if v, _ := attr(body, "data-celebrate"); v != "local" {
		t.Fatalf("data-celebrate = %q", v)
	}
	if v, _ := attr(body, "data-celebrate-delay"); v != "800" {
		t.Fatalf("data-celebrate-delay = %q", v)
	}
	if v, _ := attr(body, "data-confetti"); !strings.HasPrefix(v, "[{") {
		t.Fatalf("data-confetti = %q", v)
	}
}

func TestRender_EmptyDocument(t *testing.T) {
	var nilDoc *Document
	if _, err := nilDoc.Bytes(); !errors.Is(err, ErrEmptyDocument) {
		t.Fatalf("nil Bytes error = %v, want ErrEmptyDocument", err)
	}
	if _, err := (&Document{}).Bytes(); !errors.Is(err, ErrEmptyDocument) {
		t.Fatalf("zero Bytes error = %v, want ErrEmptyDocument", err)
	}
}
