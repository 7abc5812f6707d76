// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present dc2ansible contributors

package dc2ansible

import (
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

var uidPattern = regexp.MustCompile(`\d+`)

// renderFinalCompose rewrites the original document in place: every value
// that became a default is replaced by its Jinja expression so the result
// can serve as the role's compose template.
//
// The original document is used rather than the canonical one because
// docker compose config strips layout and normalizes far more than a
// template should.
func (c *converter) renderFinalCompose() error {
	services := c.Original.RawServices()
	for _, name := range slices.Sorted(maps.Keys(services)) {
		service, ok := services[name].(map[string]any)
		if !ok {
			continue
		}
		c.renderEnvironment(name, service)
		c.renderVolumes(name, service)
		c.renderPorts(name, service)
		c.renderImage(name, service)
		c.renderUser(service)
	}

	if err := c.renderProxyContainer(); err != nil {
		return err
	}

	c.bootstrap.FinalCompose = c.Original.Raw
	return nil
}

// renderEnvironment replaces every environment value with a reference to
// its default, list syntax is converted to map syntax on the way
func (c *converter) renderEnvironment(name string, service map[string]any) {
	env := map[string]any{}
	switch v := service["environment"].(type) {
	case map[string]any:
		env = v
	case []any:
		for _, item := range v {
			key, value, found := strings.Cut(cast.ToString(item), "=")
			if found {
				env[key] = value
			} else {
				env[key] = nil
			}
		}
		service["environment"] = env
	default:
		return
	}

	for key := range env {
		if slices.Contains(c.overrides[name].Skip, key) {
			continue
		}
		env[key] = fmt.Sprintf("{{ %s }}", c.variable(key))
	}
}

// renderVolumes swaps bind sources for their mount dir variables. Raw
// entries are matched to the canonical mounts by position, docker preserves
// volume order during canonicalization.
func (c *converter) renderVolumes(name string, service map[string]any) {
	rawVolumes, ok := service["volumes"].([]any)
	if !ok {
		return
	}
	mounts := c.Project.Project.Services[name].Volumes

	for ix, entry := range rawVolumes {
		if ix >= len(mounts) {
			break
		}
		source := mounts[ix].Mount().Source
		variable, ok := c.bootstrap.VolumeDefaults[source]
		if !ok {
			continue
		}
		expr := fmt.Sprintf("{{ %s }}", variable)
		switch v := entry.(type) {
		case string:
			rawVolumes[ix] = strings.ReplaceAll(v, source, expr)
		case map[string]any:
			v["source"] = expr
		}
	}
}

// renderPorts re-keys published host ports to their defaults variables
func (c *converter) renderPorts(name string, service map[string]any) {
	rawPorts, ok := service["ports"].([]any)
	if !ok {
		return
	}
	ports := c.Project.Project.Services[name].Ports

	for ix, entry := range rawPorts {
		if ix >= len(ports) {
			break
		}
		published := ports[ix].Published()
		if published == "" {
			continue
		}
		port, err := strconv.Atoi(published)
		if err != nil {
			continue
		}
		expr := fmt.Sprintf("{{ %s }}", c.variable(hostPortKey(name, port)))
		switch v := entry.(type) {
		case string:
			rawPorts[ix] = strings.Replace(v, published+":", expr+":", 1)
		case map[string]any:
			v["published"] = expr
		}
	}
}

func (c *converter) renderImage(name string, service map[string]any) {
	image, ok := service["image"].(string)
	if !ok || image == "" {
		return
	}
	base, _ := splitImageTag(image)
	service["image"] = fmt.Sprintf("%s:{{ %s['%s'] }}", base, c.variable("releases"), name)
}

// renderUser swaps any numeric uid or gid in the user field for the
// requested one
func (c *converter) renderUser(service map[string]any) {
	if c.UID == 0 {
		return
	}
	user := cast.ToString(service["user"])
	if user == "" {
		return
	}
	service["user"] = uidPattern.ReplaceAllString(user, strconv.Itoa(c.UID))
}

// renderProxyContainer joins the proxy service to the external proxy
// network so a reverse proxy on the same host can reach it. The service is
// also kept on the project's default network when it would otherwise lose
// it.
func (c *converter) renderProxyContainer() error {
	if c.ProxyContainer == "" {
		return nil
	}

	service, ok := c.Original.RawServices()[c.ProxyContainer].(map[string]any)
	if !ok {
		return fmt.Errorf("proxy container %q is not a service in the compose file", c.ProxyContainer)
	}

	var networks []any
	switch v := service["networks"].(type) {
	case nil:
	case []any:
		networks = v
	default:
		return fmt.Errorf("proxy container %q networks must be a list", c.ProxyContainer)
	}
	networks = append(networks, c.ExternalProxyNet)
	if len(networks) == 1 {
		networks = append(networks, "default")
	}
	service["networks"] = networks

	root, ok := c.Original.Raw["networks"].(map[string]any)
	if !ok {
		root = map[string]any{}
		c.Original.Raw["networks"] = root
	}
	if _, ok := root[c.ExternalProxyNet]; !ok {
		root[c.ExternalProxyNet] = map[string]any{"name": c.ExternalProxyNet, "external": true}
	}
	return nil
}
