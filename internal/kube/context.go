// Package kube reads the active kubeconfig context without contacting any
// cluster.
package kube

import (
	"errors"
	"fmt"

	"k8s.io/client-go/tools/clientcmd"
	"k8s.io/client-go/tools/clientcmd/api"
)

// DefaultNamespace is reported when the context does not set one.
const DefaultNamespace = "default"

// ErrNoContext means no kubeconfig is present or it selects no context.
var ErrNoContext = errors.New("no current kubeconfig context")

// ContextInfo is the part of the current context shown in the prompt.
type ContextInfo struct {
	Name      string
	Cluster   string
	Namespace string
}

// Label renders the context as "name/namespace".
func (c ContextInfo) Label() string {
	return c.Name + "/" + c.Namespace
}

// Loader reads kubeconfig files. An empty Path follows the usual client-go
// rules ($KUBECONFIG, then ~/.kube/config).
type Loader struct {
	Path string
}

// CurrentContext returns the context kubectl would use.
func (l Loader) CurrentContext() (ContextInfo, error) {
	rules := clientcmd.NewDefaultClientConfigLoadingRules()
	if l.Path != "" {
		rules.ExplicitPath = l.Path
	}

	config, err := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(
		rules, &clientcmd.ConfigOverrides{},
	).RawConfig()
	if err != nil {
		return ContextInfo{}, fmt.Errorf("failed to load kubeconfig: %w", err)
	}

	return currentFromConfig(&config)
}

func currentFromConfig(config *api.Config) (ContextInfo, error) {
	name := config.CurrentContext
	if name == "" {
		return ContextInfo{}, ErrNoContext
	}

	info := ContextInfo{Name: name, Namespace: DefaultNamespace}
	if ctx, ok := config.Contexts[name]; ok && ctx != nil {
		info.Cluster = ctx.Cluster
		if ctx.Namespace != "" {
			info.Namespace = ctx.Namespace
		}
	}
	return info, nil
}
