package cluster_test

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/eks"
	"github.com/aws/aws-sdk-go-v2/service/eks/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/apimachinery/pkg/version"
	"k8s.io/client-go/discovery"
	fakediscovery "k8s.io/client-go/discovery/fake"
	"k8s.io/client-go/kubernetes/fake"
	"k8s.io/client-go/tools/clientcmd"
	clientcmdapi "k8s.io/client-go/tools/clientcmd/api"

	"github.com/aws-samples/eks-notifier/internal/domain/repo/cluster"
)

// Helper

type fakeEKS struct {
	mu sync.Mutex

	pages    [][]string
	listErr  error
	versions map[string]string

	describeCalls int
}

func (f *fakeEKS) ListClusters(_ context.Context, params *eks.ListClustersInput, _ ...func(*eks.Options)) (*eks.ListClustersOutput, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}

	page := 0
	if params.NextToken != nil {
		page = int((*params.NextToken)[0] - '0')
	}

	ret := &eks.ListClustersOutput{Clusters: f.pages[page]}
	if page+1 < len(f.pages) {
		ret.NextToken = aws.String(string(rune('0' + page + 1)))
	}

	return ret, nil
}

func (f *fakeEKS) DescribeCluster(_ context.Context, params *eks.DescribeClusterInput, _ ...func(*eks.Options)) (*eks.DescribeClusterOutput, error) {
	f.mu.Lock()
	f.describeCalls++
	f.mu.Unlock()

	v, ok := f.versions[*params.Name]
	if !ok {
		return nil, errors.New("ResourceNotFoundException")
	}

	if v == "" {
		return &eks.DescribeClusterOutput{Cluster: &types.Cluster{Name: params.Name}}, nil
	}

	return &eks.DescribeClusterOutput{Cluster: &types.Cluster{Name: params.Name, Version: aws.String(v)}}, nil
}

func writeKubeconfig(t *testing.T, contexts ...string) string {
	config := clientcmdapi.NewConfig()
	config.AuthInfos["user"] = &clientcmdapi.AuthInfo{Token: "token"}

	for _, name := range contexts {
		config.Clusters[name] = &clientcmdapi.Cluster{Server: "https://" + name + ".example.com"}
		config.Contexts[name] = &clientcmdapi.Context{Cluster: name, AuthInfo: "user"}
	}

	path := filepath.Join(t.TempDir(), "kubeconfig")

	err := clientcmd.WriteToFile(*config, path)
	require.NoError(t, err, "failed to write kubeconfig")

	return path
}

func fakeDiscovery(versions map[string]*version.Info) cluster.DiscoveryFactory {
	return func(_ clientcmdapi.Config, contextName string) (discovery.ServerVersionInterface, error) {
		info, ok := versions[contextName]
		if !ok {
			return nil, errors.New("unreachable")
		}

		ret := fake.NewSimpleClientset().Discovery().(*fakediscovery.FakeDiscovery)
		ret.FakedServerVersion = info

		return ret, nil
	}
}

// Test

func TestEKSInventoryListsAllPages(t *testing.T) {
	client := &fakeEKS{pages: [][]string{{"prod", "staging"}, {"dev"}, {}}}

	clusters, err := cluster.NewEKSInventory(client).ListClusters(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"prod", "staging", "dev"}, clusters)
}

func TestEKSInventoryListFailure(t *testing.T) {
	client := &fakeEKS{listErr: errors.New("AccessDeniedException")}

	_, err := cluster.NewEKSInventory(client).ListClusters(context.Background())
	assert.ErrorContains(t, err, "AccessDeniedException")
}

func TestEKSInventoryClusterVersion(t *testing.T) {
	client := &fakeEKS{versions: map[string]string{"prod": "1.29", "broken": ""}}
	inventory := cluster.NewEKSInventory(client)

	v, err := inventory.ClusterVersion(context.Background(), "prod")
	require.NoError(t, err)
	assert.Equal(t, "1.29", v)

	_, err = inventory.ClusterVersion(context.Background(), "broken")
	assert.ErrorIs(t, err, cluster.ErrMissingVersion)

	_, err = inventory.ClusterVersion(context.Background(), "gone")
	assert.Error(t, err)
}

func TestEKSInventoryDescribeRate(t *testing.T) {
	client := &fakeEKS{versions: map[string]string{"prod": "1.29"}}
	inventory := cluster.NewEKSInventory(client).WithDescribeRate(0.01)

	_, err := inventory.ClusterVersion(context.Background(), "prod")
	require.NoError(t, err, "first call uses the burst")

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = inventory.ClusterVersion(ctx, "prod")
	assert.Error(t, err, "second call cannot get a slot before the deadline")
	assert.Equal(t, 1, client.describeCalls)
}

func TestKubeconfigInventory(t *testing.T) {
	path := writeKubeconfig(t, "staging", "prod", "offline", "odd")

	inventory, err := cluster.NewKubeconfigInventory(path)
	require.NoError(t, err)

	inventory = inventory.WithDiscoveryFactory(fakeDiscovery(map[string]*version.Info{
		"prod":    {Major: "1", Minor: "29+"},
		"staging": {Major: "1", Minor: "30"},
		"odd":     {Major: "", Minor: ""},
	}))

	clusters, err := inventory.ListClusters(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"odd", "offline", "prod", "staging"}, clusters)

	type testCase struct {
		name     string
		expected string
		valid    bool
	}

	cases := []testCase{
		{name: "prod", expected: "1.29", valid: true},
		{name: "staging", expected: "1.30", valid: true},
		{name: "odd"},
		{name: "offline"},
		{name: "unknown"},
	}

	for i := range cases {
		c := cases[i]

		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			v, err := inventory.ClusterVersion(context.Background(), c.name)
			assert.Equal(t, c.valid, err == nil, err)
			assert.Equal(t, c.expected, v)
		})
	}
}

func TestKubeconfigInventoryMissingFile(t *testing.T) {
	_, err := cluster.NewKubeconfigInventory(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
