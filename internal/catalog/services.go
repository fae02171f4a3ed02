package catalog

import (
	"sort"
	"strings"
)

// NeutralColor is the accent used for services the table does not know.
const NeutralColor = "bg-gray-600"

// Metadata is the static display information for one kind of service.
type Metadata struct {
	Name        string
	Description string
	Icon        string // short glyph shown in the badge
	Color       string // Tailwind background class
	Category    string
	DocsURL     string
}

var services = map[string]Metadata{
	"n8n":               {Name: "n8n", Description: "Workflow Automation", Icon: "n8n", Color: "bg-orange-500", Category: "automation", DocsURL: "https://docs.n8n.io"},
	"flowise":           {Name: "Flowise", Description: "AI Agent Builder", Icon: "FL", Color: "bg-blue-500", Category: "ai", DocsURL: "https://docs.flowiseai.com"},
	"open-webui":        {Name: "Open WebUI", Description: "ChatGPT-like Interface", Icon: "AI", Color: "bg-emerald-500", Category: "ai", DocsURL: "https://docs.openwebui.com"},
	"grafana":           {Name: "Grafana", Description: "Monitoring Dashboard", Icon: "GF", Color: "bg-orange-600", Category: "monitoring", DocsURL: "https://grafana.com/docs/grafana/latest/"},
	"prometheus":        {Name: "Prometheus", Description: "Metrics Collection", Icon: "PM", Color: "bg-red-500", Category: "monitoring", DocsURL: "https://prometheus.io/docs/"},
	"portainer":         {Name: "Portainer", Description: "Docker Management UI", Icon: "PT", Color: "bg-cyan-500", Category: "infra", DocsURL: "https://docs.portainer.io"},
	"postgresus":        {Name: "Postgresus", Description: "PostgreSQL Backups & Monitoring", Icon: "PG", Color: "bg-blue-600", Category: "database"},
	"langfuse":          {Name: "Langfuse", Description: "AI Observability", Icon: "LF", Color: "bg-violet-500", Category: "ai", DocsURL: "https://langfuse.com/docs"},
	"supabase":          {Name: "Supabase", Description: "Backend as a Service", Icon: "SB", Color: "bg-emerald-500", Category: "database", DocsURL: "https://supabase.com/docs"},
	"dify":              {Name: "Dify", Description: "AI Application Platform", Icon: "DF", Color: "bg-indigo-500", Category: "ai", DocsURL: "https://docs.dify.ai"},
	"qdrant":            {Name: "Qdrant", Description: "Vector Database", Icon: "QD", Color: "bg-purple-500", Category: "database", DocsURL: "https://qdrant.tech/documentation/"},
	"weaviate":          {Name: "Weaviate", Description: "Vector Database", Icon: "WV", Color: "bg-green-600", Category: "database", DocsURL: "https://weaviate.io/developers/weaviate"},
	"neo4j":             {Name: "Neo4j", Description: "Graph Database", Icon: "N4", Color: "bg-blue-700", Category: "database", DocsURL: "https://neo4j.com/docs/"},
	"searxng":           {Name: "SearXNG", Description: "Private Metasearch Engine", Icon: "SX", Color: "bg-teal-500", Category: "tools", DocsURL: "https://docs.searxng.org"},
	"ragapp":            {Name: "RAGApp", Description: "RAG UI & API", Icon: "RA", Color: "bg-amber-500", Category: "ai"},
	"ragflow":           {Name: "RAGFlow", Description: "Document Understanding RAG", Icon: "RF", Color: "bg-rose-500", Category: "ai", DocsURL: "https://ragflow.io/docs/dev/"},
	"lightrag":          {Name: "LightRAG", Description: "Graph-based RAG", Icon: "LR", Color: "bg-lime-600", Category: "ai"},
	"letta":             {Name: "Letta", Description: "Agent Server & SDK", Icon: "LT", Color: "bg-fuchsia-500", Category: "ai", DocsURL: "https://docs.letta.com"},
	"comfyui":           {Name: "ComfyUI", Description: "Stable Diffusion UI", Icon: "CU", Color: "bg-pink-500", Category: "ai", DocsURL: "https://docs.comfy.org"},
	"libretranslate":    {Name: "LibreTranslate", Description: "Translation API", Icon: "TR", Color: "bg-sky-500", Category: "tools", DocsURL: "https://docs.libretranslate.com"},
	"docling":           {Name: "Docling", Description: "Document Converter", Icon: "DL", Color: "bg-stone-500", Category: "tools", DocsURL: "https://docling-project.github.io/docling/"},
	"paddleocr":         {Name: "PaddleOCR", Description: "OCR API Server", Icon: "OC", Color: "bg-yellow-600", Category: "tools"},
	"postiz":            {Name: "Postiz", Description: "Social Publishing Platform", Icon: "PZ", Color: "bg-violet-600", Category: "tools", DocsURL: "https://docs.postiz.com"},
	"waha":              {Name: "WAHA", Description: "WhatsApp HTTP API", Icon: "WA", Color: "bg-green-700", Category: "tools", DocsURL: "https://waha.devlike.pro/docs/"},
	"crawl4ai":          {Name: "Crawl4AI", Description: "Web Crawler for AI", Icon: "C4", Color: "bg-gray-600", Category: "tools", DocsURL: "https://docs.crawl4ai.com"},
	"gotenberg":         {Name: "Gotenberg", Description: "PDF Generator API", Icon: "GT", Color: "bg-red-600", Category: "tools", DocsURL: "https://gotenberg.dev/docs/"},
	"ollama":            {Name: "Ollama", Description: "Local LLM Runner", Icon: "OL", Color: "bg-gray-700", Category: "ai", DocsURL: "https://github.com/ollama/ollama/tree/main/docs"},
	"redis":             {Name: "Redis (Valkey)", Description: "In-Memory Data Store", Icon: "RD", Color: "bg-red-700", Category: "infra", DocsURL: "https://valkey.io/docs/"},
	"postgres":          {Name: "PostgreSQL", Description: "Relational Database", Icon: "PG", Color: "bg-blue-800", Category: "infra", DocsURL: "https://www.postgresql.org/docs/"},
	"python-runner":     {Name: "Python Runner", Description: "Custom Python Scripts", Icon: "PY", Color: "bg-yellow-500", Category: "tools"},
	"cloudflare-tunnel": {Name: "Cloudflare Tunnel", Description: "Zero-Trust Network Access", Icon: "CF", Color: "bg-orange-500", Category: "infra", DocsURL: "https://developers.cloudflare.com/cloudflare-one/connections/connect-networks/"},
}

// Lookup returns the metadata for key when the table knows it.
func Lookup(key string) (Metadata, bool) {
	meta, ok := services[key]
	return meta, ok
}

// Resolve returns the metadata for key, synthesizing a fallback for unknown
// keys so every manifest entry can be rendered.
func Resolve(key string) Metadata {
	if meta, ok := services[key]; ok {
		return meta
	}
	return Metadata{
		Name:  key,
		Icon:  fallbackGlyph(key),
		Color: NeutralColor,
	}
}

// DisplayName is the name services are sorted and titled by.
func DisplayName(key string) string {
	return Resolve(key).Name
}

// Known returns every key in the table, sorted.
func Known() []string {
	keys := make([]string, 0, len(services))
	for key := range services {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func fallbackGlyph(key string) string {
	runes := []rune(key)
	if len(runes) > 2 {
		runes = runes[:2]
	}
	return strings.ToUpper(string(runes))
}
