package a2a

import (
	"github.com/a2aproject/a2a-go/a2a"
)

// BuildAgentCard creates the agent card advertising the health skill.
func BuildAgentCard(baseURL, name, version string) *a2a.AgentCard {
	return &a2a.AgentCard{
		Name:               name,
		Description:        "Business process facade for OpenStack Ironic. Reports aggregated API and baremetal-backend health; node operations are not implemented yet.",
		URL:                baseURL + "/a2a",
		Version:            version,
		ProtocolVersion:    "1.0",
		PreferredTransport: a2a.TransportProtocolJSONRPC,
		DefaultInputModes:  []string{"text/plain"},
		DefaultOutputModes: []string{"application/json"},
		Skills: []a2a.AgentSkill{
			{
				ID:          "health",
				Name:        "health",
				Description: "Check the health of the ironic-aio API and its Ironic dependency",
				Tags:        []string{"health", "monitoring", "ironic"},
			},
		},
		SecuritySchemes: a2a.NamedSecuritySchemes{
			"bearer": a2a.HTTPAuthSecurityScheme{
				Scheme:      "bearer",
				Description: "Bearer token authentication",
			},
		},
		Security: []a2a.SecurityRequirements{
			{a2a.SecuritySchemeName("bearer"): a2a.SecuritySchemeScopes{}},
		},
	}
}
