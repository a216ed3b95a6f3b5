package cluster

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"k8s.io/client-go/discovery"
	"k8s.io/client-go/tools/clientcmd"
	clientcmdapi "k8s.io/client-go/tools/clientcmd/api"
)

// DiscoveryFactory builds a discovery client for a kubeconfig context.
type DiscoveryFactory func(config clientcmdapi.Config, contextName string) (discovery.ServerVersionInterface, error)

// KubeconfigInventory treats every context of a kubeconfig file as a cluster.
type KubeconfigInventory struct {
	config       clientcmdapi.Config
	newDiscovery DiscoveryFactory
}

func NewKubeconfigInventory(path string) (KubeconfigInventory, error) {
	config, err := clientcmd.LoadFromFile(path)
	if err != nil {
		return KubeconfigInventory{}, fmt.Errorf("failed to load kubeconfig %s: %w", path, err)
	}

	return KubeconfigInventory{
		config:       *config,
		newDiscovery: defaultDiscovery,
	}, nil
}

func (k KubeconfigInventory) WithDiscoveryFactory(factory DiscoveryFactory) KubeconfigInventory {
	k.newDiscovery = factory

	return k
}

// ListClusters returns the context names in lexical order.
func (k KubeconfigInventory) ListClusters(_ context.Context) ([]string, error) {
	ret := make([]string, 0, len(k.config.Contexts))
	for name := range k.config.Contexts {
		ret = append(ret, name)
	}

	sort.Strings(ret)

	return ret, nil
}

func (k KubeconfigInventory) ClusterVersion(_ context.Context, name string) (string, error) {
	if _, ok := k.config.Contexts[name]; !ok {
		return "", fmt.Errorf("unknown context %s", name)
	}

	client, err := k.newDiscovery(k.config, name)
	if err != nil {
		return "", fmt.Errorf("failed to create discovery client for %s: %w", name, err)
	}

	info, err := client.ServerVersion()
	if err != nil {
		return "", fmt.Errorf("failed to get server version of %s: %w", name, err)
	}

	major := strings.TrimSuffix(info.Major, "+")
	minor := strings.TrimSuffix(info.Minor, "+")

	if major == "" || minor == "" {
		return "", fmt.Errorf("%s: %w", name, ErrMissingVersion)
	}

	return major + "." + minor, nil
}

func defaultDiscovery(config clientcmdapi.Config, contextName string) (discovery.ServerVersionInterface, error) {
	restConfig, err := clientcmd.NewNonInteractiveClientConfig(config, contextName, &clientcmd.ConfigOverrides{}, nil).ClientConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to build rest config: %w", err)
	}

	return discovery.NewDiscoveryClientForConfig(restConfig)
}
