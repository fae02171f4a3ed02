package catalog

// ExtraKind controls how a recognized extra field is rendered on a card.
type ExtraKind int

const (
	// ExtraCopy renders a labeled value with a copy button.
	ExtraCopy ExtraKind = iota
	// ExtraLink renders a labeled external link.
	ExtraLink
	// ExtraSecret renders a masked value with reveal and copy buttons.
	ExtraSecret
	// ExtraInternal is an internal address; it is shown on the card's
	// address line instead of the bottom section.
	ExtraInternal
)

func (k ExtraKind) String() string {
	switch k {
	case ExtraCopy:
		return "copy"
	case ExtraLink:
		return "link"
	case ExtraSecret:
		return "secret"
	case ExtraInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// ExtraField describes a recognized key of a service's extra map.
type ExtraField struct {
	Label string
	Kind  ExtraKind
}

// RecommendationKey is not part of the lookup table but is still shown, as
// italic text, when present.
const RecommendationKey = "recommendation"

var extraFields = map[string]ExtraField{
	"internal_api":     {Label: "Internal API", Kind: ExtraInternal},
	"internal_url":     {Label: "Internal URL", Kind: ExtraInternal},
	"workers":          {Label: "Workers", Kind: ExtraCopy},
	"dashboard_url":    {Label: "Dashboard", Kind: ExtraLink},
	"api_url":          {Label: "API", Kind: ExtraLink},
	"studio_url":       {Label: "Studio", Kind: ExtraLink},
	"swagger_url":      {Label: "Swagger", Kind: ExtraLink},
	"docs_url":         {Label: "Docs", Kind: ExtraLink},
	"admin_url":        {Label: "Admin", Kind: ExtraLink},
	"webhook_url":      {Label: "Webhook URL", Kind: ExtraCopy},
	"grpc_url":         {Label: "gRPC URL", Kind: ExtraCopy},
	"database":         {Label: "Database", Kind: ExtraCopy},
	"db_host":          {Label: "DB Host", Kind: ExtraCopy},
	"db_port":          {Label: "DB Port", Kind: ExtraCopy},
	"db_user":          {Label: "DB User", Kind: ExtraCopy},
	"db_password":      {Label: "DB Password", Kind: ExtraSecret},
	"anon_key":         {Label: "Anon Key", Kind: ExtraSecret},
	"service_role_key": {Label: "Service Role Key", Kind: ExtraSecret},
	"secret_key":       {Label: "Secret Key", Kind: ExtraSecret},
	"access_token":     {Label: "Access Token", Kind: ExtraSecret},
	"bucket":           {Label: "Bucket", Kind: ExtraCopy},
	"model":            {Label: "Model", Kind: ExtraCopy},
}

// internalKeys is the order in which internal addresses are preferred.
var internalKeys = []string{"internal_api", "internal_url"}

// Extra looks up a recognized extra field.
func Extra(key string) (ExtraField, bool) {
	field, ok := extraFields[key]
	return field, ok
}

// InternalKeys returns the extra keys that carry an internal address, in
// preference order.
func InternalKeys() []string {
	out := make([]string, len(internalKeys))
	copy(out, internalKeys)
	return out
}
