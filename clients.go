package main

import (
	"fmt"

	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/common/auth"
	"github.com/oracle/oci-go-sdk/v65/core"
)

// OCIClients holds the OCI service clients used by a run
type OCIClients struct {
	ComputeClient        core.ComputeClient
	VirtualNetworkClient core.VirtualNetworkClient
}

// newConfigurationProvider returns the standard file-based provider when one
// is usable, otherwise falls back to instance principal authentication.
func newConfigurationProvider() (common.ConfigurationProvider, error) {
	provider := common.DefaultConfigProvider()
	if _, err := provider.TenancyOCID(); err == nil {
		return provider, nil
	}

	ipProvider, err := auth.InstancePrincipalConfigurationProvider()
	if err != nil {
		return nil, fmt.Errorf("no usable OCI configuration (tried config file and instance principal): %w", err)
	}
	return ipProvider, nil
}

// initOCIClients initializes the compute and virtual network clients,
// overriding the configured region when one is given
func initOCIClients(region string) (*OCIClients, error) {
	configProvider, err := newConfigurationProvider()
	if err != nil {
		return nil, err
	}

	computeClient, err := core.NewComputeClientWithConfigurationProvider(configProvider)
	if err != nil {
		return nil, fmt.Errorf("failed to create compute client: %w", err)
	}

	vnClient, err := core.NewVirtualNetworkClientWithConfigurationProvider(configProvider)
	if err != nil {
		return nil, fmt.Errorf("failed to create virtual network client: %w", err)
	}

	if region != "" {
		computeClient.SetRegion(region)
		vnClient.SetRegion(region)
	}

	return &OCIClients{
		ComputeClient:        computeClient,
		VirtualNetworkClient: vnClient,
	}, nil
}
