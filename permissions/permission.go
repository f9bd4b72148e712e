package permissions

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

// Rule describes who may call one route pattern. An empty Roles list lets
// any authenticated user through, Skip makes the route public.
type Rule struct {
	Roles  []string `json:"roles"`
	Path   string   `json:"path"`
	Method string   `json:"method"`
	Skip   bool     `json:"skip"`
}

// Allows reports whether role may call the route.
func (r Rule) Allows(role string) bool {
	if r.Skip || len(r.Roles) == 0 {
		return true
	}

	return slices.Contains(r.Roles, role)
}

type Policy struct {
	Endpoints []Rule `json:"endpoints"`
	Skip      bool   `json:"skip"`

	index map[string]Rule
}

func ruleKey(method, path string) string {
	return strings.ToUpper(method) + " " + path
}

// Lookup returns the rule registered for the chi route pattern and method.
// Unknown routes get a zero Rule, which requires authentication only.
func (p *Policy) Lookup(path, method string) Rule {
	if p == nil {
		return Rule{}
	}

	if p.index == nil {
		idx := slices.IndexFunc(p.Endpoints, func(rule Rule) bool {
			return rule.Path == path && strings.EqualFold(rule.Method, method)
		})
		if idx == -1 {
			return Rule{}
		}

		return p.Endpoints[idx]
	}

	return p.index[ruleKey(method, path)]
}

// Load decodes a policy document and indexes it by method and path.
func Load(data []byte) (*Policy, error) {
	var policy Policy

	if err := json.Unmarshal(data, &policy); err != nil {
		return nil, fmt.Errorf("decode permissions: %w", err)
	}

	policy.index = make(map[string]Rule, len(policy.Endpoints))

	for _, rule := range policy.Endpoints {
		if rule.Path == "" || !validMethod(rule.Method) {
			return nil, fmt.Errorf("invalid permission rule %q %q", rule.Method, rule.Path)
		}

		key := ruleKey(rule.Method, rule.Path)
		if _, dup := policy.index[key]; dup {
			return nil, fmt.Errorf("duplicate permission rule %s", key)
		}

		policy.index[key] = rule
	}

	return &policy, nil
}

func validMethod(method string) bool {
	switch strings.ToUpper(method) {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}

// Get loads the embedded policy. A broken policy file is a build defect, so
// the process stops rather than serving with no access control.
func Get() *Policy {
	policy, err := Load(permissionsData)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load embedded permissions")
	}

	log.Info().Int("endpoints", len(policy.Endpoints)).Msg("Successfully loaded embedded permissions")

	return policy
}
