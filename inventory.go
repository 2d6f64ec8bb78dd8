package main

import (
	"context"
	"time"

	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/core"
)

// fetchRunningInstances performs the single inventory fetch of a run: all
// instances in RUNNING state in the compartment, paginated transparently.
// Instances without an OCID or display name never enter the inventory.
// Any provider error, and an empty result, are fatal to the run.
func fetchRunningInstances(ctx context.Context, client computeAPI, compartmentID, region string, callTimeout time.Duration) ([]Instance, error) {
	var instances []Instance

	logger.Debug("Starting instance discovery for compartment: %s", compartmentID)

	var page *string
	pageCount := 0
	for {
		pageCount++
		logger.Debug("Fetching instances page %d for compartment: %s", pageCount, compartmentID)

		req := core.ListInstancesRequest{
			CompartmentId:  common.String(compartmentID),
			LifecycleState: core.InstanceLifecycleStateRunning,
			Page:           page,
		}

		reqCtx, cancel := context.WithTimeout(ctx, callTimeout)
		resp, err := client.ListInstances(reqCtx, req)
		cancel()
		if err != nil {
			return nil, &DiscoveryError{CompartmentID: compartmentID, Region: region, Err: err}
		}

		for _, instance := range resp.Items {
			// The request filters server-side; the state guard stays for
			// providers that ignore the parameter.
			if instance.LifecycleState != core.InstanceLifecycleStateRunning {
				continue
			}
			if instance.Id == nil || *instance.Id == "" {
				continue
			}
			if instance.DisplayName == nil || *instance.DisplayName == "" {
				continue
			}
			instances = append(instances, Instance{
				OCID: *instance.Id,
				Name: *instance.DisplayName,
			})
		}

		if resp.OpcNextPage == nil {
			break
		}
		page = resp.OpcNextPage
	}

	if len(instances) == 0 {
		return nil, &DiscoveryError{CompartmentID: compartmentID, Region: region}
	}

	logger.Verbose("Found %d running instances in compartment %s", len(instances), compartmentID)
	return instances, nil
}
