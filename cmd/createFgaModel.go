// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	corev1 "k8s.io/api/core/v1"
	k8serrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"

	"github.com/canonical/crew-service/internal/authorization"
	"github.com/canonical/crew-service/internal/logging"
	"github.com/canonical/crew-service/internal/monitoring"
	"github.com/canonical/crew-service/internal/openfga"
	"github.com/canonical/crew-service/internal/tracing"
)

const StoreName = "crew-service"

// createFgaModelCmd represents the createFgaModel command
var createFgaModelCmd = &cobra.Command{
	Use:   "create-fga-model",
	Short: "Creates the openfga model mirroring boat roles",
	Long:  `Creates the openfga store if needed and writes the boat role model, optionally saving the ids into a configmap`,
	RunE: func(cmd *cobra.Command, args []string) error {
		apiURL, _ := cmd.Flags().GetString("fga-api-url")
		apiToken, _ := cmd.Flags().GetString("fga-api-token")
		storeID, _ := cmd.Flags().GetString("fga-store-id")
		format, _ := cmd.Flags().GetString("format")
		verbose, _ := cmd.Flags().GetBool("verbose")
		configMapResource, _ := cmd.Flags().GetString("store-k8s-configmap-resource")
		kubeconfigPath, _ := cmd.Flags().GetString("kubeconfig")

		modelID, finalStoreID, err := createModel(cmd.Context(), apiURL, apiToken, storeID, verbose)
		if err != nil {
			return err
		}

		if configMapResource != "" {
			if err := updateConfigMap(cmd.Context(), kubeconfigPath, configMapResource, finalStoreID, modelID); err != nil {
				return fmt.Errorf("failed to update configmap: %w", err)
			}
			cmd.Printf("ConfigMap %s updated successfully\n", configMapResource)
		}

		if format == "json" {
			return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]string{
				"store_id": finalStoreID,
				"model_id": modelID,
			})
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created model: %s\n", modelID)
		if storeID == "" {
			fmt.Fprintf(cmd.OutOrStdout(), "Created store: %s\n", finalStoreID)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(createFgaModelCmd)

	createFgaModelCmd.Flags().String("fga-api-url", "", "The openfga API URL")
	createFgaModelCmd.Flags().String("fga-api-token", "", "The openfga API token")
	createFgaModelCmd.Flags().String("fga-store-id", "", "The openfga store to create the model in, if empty one will be created")
	createFgaModelCmd.Flags().String("format", "text", "Output format (text or json)")
	createFgaModelCmd.Flags().BoolP("verbose", "v", false, "Enable verbose logging")
	createFgaModelCmd.Flags().String("store-k8s-configmap-resource", "", "The configmap resource to store the FGA Store ID and Model ID, format: namespace/name")
	createFgaModelCmd.Flags().String("kubeconfig", "", "Path to the kubeconfig file (optional, defaults to in-cluster config)")

	_ = createFgaModelCmd.MarkFlagRequired("fga-api-url")
	_ = createFgaModelCmd.MarkFlagRequired("fga-api-token")
}

func createModel(ctx context.Context, apiURL, apiToken, storeID string, verbose bool) (string, string, error) {
	logger := logging.NewNoopLogger()
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("", logger)

	fgaClient, err := openfga.NewClient(openfga.NewConfig(apiURL, apiToken, storeID, "", verbose, tracer, monitor, logger))
	if err != nil {
		return "", "", err
	}

	if storeID == "" {
		storeID, err = fgaClient.CreateStore(ctx, StoreName)
		if err != nil {
			return "", "", fmt.Errorf("failed to create store: %w", err)
		}

		// the sdk client is bound to a store at construction
		fgaClient, err = openfga.NewClient(openfga.NewConfig(apiURL, apiToken, storeID, "", verbose, tracer, monitor, logger))
		if err != nil {
			return "", "", err
		}
	}

	model, err := authorization.NewAuthorizationModelProvider("v0").GetModel()
	if err != nil {
		return "", "", err
	}

	modelID, err := fgaClient.WriteModel(ctx, model)
	if err != nil {
		return "", "", fmt.Errorf("failed to write model: %w", err)
	}

	return modelID, storeID, nil
}

func kubeConfig(kubeconfigPath string) (*rest.Config, error) {
	if kubeconfigPath != "" {
		return clientcmd.BuildConfigFromFlags("", kubeconfigPath)
	}

	config, err := rest.InClusterConfig()
	if err == nil {
		return config, nil
	}

	// outside a cluster fall back to the default kubeconfig loading rules
	return clientcmd.NewNonInteractiveDeferredLoadingClientConfig(
		clientcmd.NewDefaultClientConfigLoadingRules(),
		&clientcmd.ConfigOverrides{},
	).ClientConfig()
}

func updateConfigMap(ctx context.Context, kubeconfigPath, configMapResource, storeID, modelID string) error {
	namespace, name, ok := strings.Cut(configMapResource, "/")
	if !ok || namespace == "" || name == "" || strings.Contains(name, "/") {
		return fmt.Errorf("invalid configmap resource format: %s, expected namespace/name", configMapResource)
	}

	config, err := kubeConfig(kubeconfigPath)
	if err != nil {
		return fmt.Errorf("failed to load kubeconfig: %w", err)
	}

	clientset, err := kubernetes.NewForConfig(config)
	if err != nil {
		return fmt.Errorf("failed to create kubernetes client: %w", err)
	}

	data := map[string]string{
		"OPENFGA_STORE_ID":               storeID,
		"OPENFGA_AUTHORIZATION_MODEL_ID": modelID,
	}

	configMaps := clientset.CoreV1().ConfigMaps(namespace)

	cm, err := configMaps.Get(ctx, name, metav1.GetOptions{})
	if k8serrors.IsNotFound(err) {
		cm = &corev1.ConfigMap{
			ObjectMeta: metav1.ObjectMeta{Name: name, Namespace: namespace},
			Data:       data,
		}
		if _, err := configMaps.Create(ctx, cm, metav1.CreateOptions{}); err != nil {
			return fmt.Errorf("failed to create configmap %s: %w", configMapResource, err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get configmap %s: %w", configMapResource, err)
	}

	if cm.Data == nil {
		cm.Data = make(map[string]string, len(data))
	}
	for k, v := range data {
		cm.Data[k] = v
	}

	if _, err := configMaps.Update(ctx, cm, metav1.UpdateOptions{}); err != nil {
		return fmt.Errorf("failed to update configmap %s: %w", configMapResource, err)
	}

	return nil
}
