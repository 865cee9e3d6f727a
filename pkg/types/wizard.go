package types

// StepKind names one of the recognized wizard step variants.
type StepKind string

const (
	StepSecrets   StepKind = "secrets"
	StepConfigure StepKind = "configure"
	StepTest      StepKind = "test"
	StepInfo      StepKind = "info"
	StepUnknown   StepKind = "unknown"
)

// WizardStep is one entry of the setup wizard, decoded from the manifest's
// single-key step encoding. Position is the 1-based index used in messages.
//
// RawKind keeps the key exactly as written so unknown kinds can be named in
// diagnostics. KeyCount preserves how many top-level keys the step mapping
// carried; anything other than one is a malformed step.
type WizardStep struct {
	Kind     StepKind
	RawKind  string
	Position int
	KeyCount int
	Body     *ConfigNode

	// Decoded payload for secrets/configure steps.
	Fields  []StepField
	Collect []string
}

// StepField is one inline field definition of a secrets or configure step.
type StepField struct {
	Key      string
	HasKey   bool
	Label    string
	Type     string
	Required bool

	// ShowWhenField is the sibling key referenced by showWhen, if any.
	ShowWhenField string
	HasShowWhen   bool

	// Options is the raw options sequence; nil when absent.
	Options *ConfigNode

	Obtain *ObtainSpec
}

// ObtainSpec describes how a secret field's value is acquired.
type ObtainSpec struct {
	Type             string
	HasType          bool
	Secret           bool
	AuthorizationURL string
	TokenURL         string
	HelpURL          string
}

// decodeWizardSteps turns the raw step sequence into the WizardStep sum
// type. Malformed steps are decoded, not rejected: validation decides what
// to report, so a zero-key or multi-key step still yields exactly one entry.
func decodeWizardSteps(setup *ConfigNode) []WizardStep {
	items := setup.Items()
	if len(items) == 0 {
		return nil
	}
	steps := make([]WizardStep, 0, len(items))
	for i, item := range items {
		step := WizardStep{
			Kind:     StepUnknown,
			Position: i + 1,
		}
		if item.IsMapping() {
			keys := item.Keys()
			step.KeyCount = len(keys)
			if len(keys) > 0 {
				step.RawKind = keys[0]
				step.Body = item.Get(keys[0])
			}
		}
		switch step.RawKind {
		case "secrets":
			step.Kind = StepSecrets
		case "configure":
			step.Kind = StepConfigure
		case "test":
			step.Kind = StepTest
		case "info":
			step.Kind = StepInfo
		}
		if step.Kind == StepSecrets || step.Kind == StepConfigure {
			step.Fields = decodeStepFields(step.Body.Get("fields"))
			step.Collect = step.Body.Get("collect").StringItems()
		}
		steps = append(steps, step)
	}
	return steps
}

func decodeStepFields(fields *ConfigNode) []StepField {
	items := fields.Items()
	if len(items) == 0 {
		return nil
	}
	out := make([]StepField, 0, len(items))
	for _, item := range items {
		f := StepField{
			Label: item.Get("label").StringOr(""),
			Type:  item.Get("type").StringOr(""),
		}
		if key, ok := item.Get("key").Str(); ok {
			f.Key = key
			f.HasKey = true
		}
		if req, ok := item.Get("required").Bool(); ok {
			f.Required = req
		}
		if showWhen := item.Get("showWhen"); !showWhen.IsAbsent() {
			f.HasShowWhen = true
			f.ShowWhenField = showWhen.Get("field").StringOr("")
		}
		if options := item.Get("options"); !options.IsAbsent() {
			f.Options = options
		}
		if obtain := item.Get("obtain"); !obtain.IsAbsent() {
			spec := &ObtainSpec{
				AuthorizationURL: obtain.Get("authorization_url").StringOr(""),
				TokenURL:         obtain.Get("token_url").StringOr(""),
				HelpURL:          obtain.Get("help_url").StringOr(""),
			}
			if t, ok := obtain.Get("type").Str(); ok {
				spec.Type = t
				spec.HasType = true
			}
			if secret, ok := obtain.Get("secret").Bool(); ok {
				spec.Secret = secret
			}
			f.Obtain = spec
		}
		out = append(out, f)
	}
	return out
}
