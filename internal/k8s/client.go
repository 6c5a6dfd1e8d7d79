package k8s

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
)

const userAgent = "execd"

// ClientOptions selects the cluster to talk to.
type ClientOptions struct {
	// Kubeconfig is an explicit kubeconfig path; it wins over every other source.
	Kubeconfig string
	// Context overrides the kubeconfig's current context.
	Context string
	// RequestTimeout bounds every request made by the client. Zero means no limit.
	RequestTimeout time.Duration
}

// GetKubernetesClient returns a Kubernetes dynamic client.
// Priority order:
// 1. Explicit kubeconfig path or context from opts
// 2. In-cluster config (service account token)
// 3. KUBECONFIG environment variable
// 4. ~/.kube/config file
func GetKubernetesClient(opts ClientOptions) (dynamic.Interface, error) {
	config, err := getKubernetesConfig(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to get kubernetes config: %w", err)
	}

	config.Timeout = opts.RequestTimeout
	config.UserAgent = userAgent

	client, err := dynamic.NewForConfig(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kubernetes client: %w", err)
	}

	return client, nil
}

func getKubernetesConfig(opts ClientOptions) (*rest.Config, error) {
	// Priority 1: explicit selection from flags
	if opts.Kubeconfig != "" || opts.Context != "" {
		return loadKubeconfig(opts.Kubeconfig, opts.Context)
	}

	// Priority 2: Try in-cluster config (service account token)
	config, err := rest.InClusterConfig()
	if err == nil {
		return config, nil
	}

	// Priority 3: Try KUBECONFIG environment variable
	kubeconfigEnv := os.Getenv("KUBECONFIG")
	if kubeconfigEnv != "" {
		config, err := loadKubeconfig("", "")
		if err == nil {
			return config, nil
		}
	}

	// Priority 4: Try default kubeconfig path (~/.kube/config)
	homeDir, err := os.UserHomeDir()
	if err == nil {
		kubeconfigPath := filepath.Join(homeDir, ".kube", "config")
		if _, err := os.Stat(kubeconfigPath); err == nil {
			config, err := loadKubeconfig(kubeconfigPath, "")
			if err == nil {
				return config, nil
			}
		}
	}

	return nil, fmt.Errorf("unable to load kubernetes config: tried in-cluster, KUBECONFIG env, and ~/.kube/config")
}

// loadKubeconfig resolves a kubeconfig with the standard loading rules. An
// empty path falls back to KUBECONFIG (which may list several files).
func loadKubeconfig(path, context string) (*rest.Config, error) {
	rules := clientcmd.NewDefaultClientConfigLoadingRules()
	rules.ExplicitPath = path

	overrides := &clientcmd.ConfigOverrides{CurrentContext: context}
	config, err := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(rules, overrides).ClientConfig()
	if err != nil {
		if path != "" {
			return nil, fmt.Errorf("failed to load kubeconfig %s: %w", path, err)
		}
		return nil, fmt.Errorf("failed to load kubeconfig: %w", err)
	}
	return config, nil
}
