package manager

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	apisv1alpha1 "github.com/bindstor/bindstor/pkg/apis/bindstor/v1alpha1"
	bindstorapi "github.com/bindstor/bindstor/pkg/apiserver/api"
	"github.com/bindstor/bindstor/pkg/bindctl/cmdparser/definitions"
)

// Client talks to the bindstor apiserver over its REST API
type Client struct {
	serverAddress string
	httpClient    *http.Client
}

func NewClient() *Client {
	return &Client{
		serverAddress: definitions.ServerAddress,
		httpClient:    &http.Client{Timeout: definitions.Timeout},
	}
}

func (c *Client) do(method, path string, reqBody interface{}, rspBody interface{}) error {
	var body io.Reader
	if reqBody != nil {
		buf, err := json.Marshal(reqBody)
		if err != nil {
			return err
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequest(method, c.serverAddress+"/apis/bindstor.io/v1alpha1"+path, body)
	if err != nil {
		return err
	}
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rsp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer rsp.Body.Close()

	data, err := io.ReadAll(rsp.Body)
	if err != nil {
		return err
	}
	if rsp.StatusCode < http.StatusOK || rsp.StatusCode >= http.StatusMultipleChoices {
		var failRsp bindstorapi.RspFailBody
		if err := json.Unmarshal(data, &failRsp); err == nil && failRsp.Desc != "" {
			return fmt.Errorf("%s", failRsp.Desc)
		}
		return fmt.Errorf("unexpected status %d: %s", rsp.StatusCode, string(data))
	}
	if rspBody == nil {
		return nil
	}
	return json.Unmarshal(data, rspBody)
}

func (c *Client) ListVolumes() (*bindstorapi.VolumeList, error) {
	var rsp bindstorapi.VolumeList
	err := c.do(http.MethodGet, "/cluster/volumes", nil, &rsp)
	return &rsp, err
}

func (c *Client) GetVolume(name string) (*bindstorapi.Volume, error) {
	var rsp bindstorapi.Volume
	err := c.do(http.MethodGet, "/cluster/volumes/"+name, nil, &rsp)
	return &rsp, err
}

func (c *Client) RegisterVolume(name string, desc apisv1alpha1.VolumeDescriptor) (*bindstorapi.Volume, error) {
	var rsp bindstorapi.Volume
	err := c.do(http.MethodPost, "/cluster/volumes",
		bindstorapi.RegisterVolumeReqBody{Name: name, Descriptor: desc}, &rsp)
	return &rsp, err
}

func (c *Client) ReleaseVolume(name string) error {
	return c.do(http.MethodDelete, "/cluster/volumes/"+name, nil, nil)
}

func (c *Client) DestroyVolume(name string) error {
	return c.do(http.MethodPost, "/cluster/volumes/"+name+"/destroy", nil, nil)
}

func (c *Client) ListClaims() (*bindstorapi.ClaimList, error) {
	var rsp bindstorapi.ClaimList
	err := c.do(http.MethodGet, "/cluster/claims", nil, &rsp)
	return &rsp, err
}

func (c *Client) GetClaim(name string) (*bindstorapi.Claim, error) {
	var rsp bindstorapi.Claim
	err := c.do(http.MethodGet, "/cluster/claims/"+name, nil, &rsp)
	return &rsp, err
}

func (c *Client) SubmitClaim(name string, desc apisv1alpha1.ClaimDescriptor) (*bindstorapi.SubmitClaimRspBody, error) {
	var rsp bindstorapi.SubmitClaimRspBody
	err := c.do(http.MethodPost, "/cluster/claims",
		bindstorapi.SubmitClaimReqBody{Name: name, Descriptor: desc}, &rsp)
	return &rsp, err
}

func (c *Client) ReleaseClaim(name string) error {
	return c.do(http.MethodDelete, "/cluster/claims/"+name, nil, nil)
}

func (c *Client) ListBindings() (*bindstorapi.BindingList, error) {
	var rsp bindstorapi.BindingList
	err := c.do(http.MethodGet, "/cluster/bindings", nil, &rsp)
	return &rsp, err
}

func (c *Client) ListMounts() (*bindstorapi.MountList, error) {
	var rsp bindstorapi.MountList
	err := c.do(http.MethodGet, "/cluster/mounts", nil, &rsp)
	return &rsp, err
}

func (c *Client) ReleaseMount(id string) error {
	return c.do(http.MethodDelete, "/cluster/mounts/"+id, nil, nil)
}

func (c *Client) RequestWorkloadMounts(workload string, desc apisv1alpha1.WorkloadDescriptor) (*bindstorapi.MountList, error) {
	var rsp bindstorapi.MountList
	err := c.do(http.MethodPost, "/cluster/workloads/"+workload+"/mounts", desc, &rsp)
	return &rsp, err
}

func (c *Client) ListEvents() (*bindstorapi.EventList, error) {
	var rsp bindstorapi.EventList
	err := c.do(http.MethodGet, "/cluster/events", nil, &rsp)
	return &rsp, err
}
