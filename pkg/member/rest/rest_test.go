package rest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	apis "github.com/bindstor/bindstor/pkg/apis/bindstor"
	apisv1alpha1 "github.com/bindstor/bindstor/pkg/apis/bindstor/v1alpha1"
	"github.com/bindstor/bindstor/pkg/binder"
)

func TestNew(t *testing.T) {
	type args struct {
		name     string
		httpPort int
		member   apis.StorageMember
	}
	var wantServer = &restServer{}
	wantServer.name = "test_server"
	wantServer.httpPort = 8090
	wantServer.logger = log.WithField("Module", "RESTServer")

	tests := []struct {
		name string
		args args
		want Server
	}{
		{
			args: args{name: "test_server", httpPort: 8090},
			want: wantServer,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := New(tt.args.name, tt.args.httpPort, tt.args.member); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("New() = %v, want %v", got, tt.want)
			}
		})
	}
}

// fakeMember overrides only the methods the status routes read
type fakeMember struct {
	apis.StorageMember

	claims   []*apisv1alpha1.Claim
	volumes  []*apisv1alpha1.Volume
	bindings []apisv1alpha1.Binding
	mounts   []*apisv1alpha1.Mount
	events   []binder.TransitionEvent
}

func (f *fakeMember) Name() string                         { return "test_server" }
func (f *fakeMember) Version() string                      { return apis.Version }
func (f *fakeMember) ListClaims() []*apisv1alpha1.Claim    { return f.claims }
func (f *fakeMember) ListVolumes() []*apisv1alpha1.Volume  { return f.volumes }
func (f *fakeMember) ListBindings() []apisv1alpha1.Binding { return f.bindings }
func (f *fakeMember) ListMounts() []*apisv1alpha1.Mount    { return f.mounts }
func (f *fakeMember) Events() []binder.TransitionEvent     { return f.events }

func newTestRouter(m apis.StorageMember) http.Handler {
	rs := New("test_server", 0, m).(*restServer)
	router := mux.NewRouter().StrictSlash(true)
	for _, route := range rs.buildRoutes() {
		router.Name(route.Name).Methods(route.Method).Path(route.Pattern).Handler(route.HandlerFunc)
	}
	return router
}

func Test_restServer_handleStatus(t *testing.T) {
	m := &fakeMember{
		claims: []*apisv1alpha1.Claim{
			{Name: "bound-claim", Status: apisv1alpha1.ClaimStatus{State: apisv1alpha1.ClaimStateBound, BoundVolume: "vol-1"}},
			{Name: "waiting-claim", Status: apisv1alpha1.ClaimStatus{State: apisv1alpha1.ClaimStatePending}},
			{Name: "lost-claim", Status: apisv1alpha1.ClaimStatus{State: apisv1alpha1.ClaimStateLost}},
		},
		volumes:  []*apisv1alpha1.Volume{{Name: "vol-1"}},
		bindings: []apisv1alpha1.Binding{{ClaimName: "bound-claim", VolumeName: "vol-1"}},
	}
	router := newTestRouter(m)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /healthz = %d, want %d", rec.Code, http.StatusOK)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /status = %d, want %d", rec.Code, http.StatusOK)
	}

	var status memberStatus
	if err := json.Unmarshal(rec.Body.Bytes(), &status); err != nil {
		t.Fatalf("GET /status returned invalid JSON: %v", err)
	}
	if status.Name != "test_server" {
		t.Errorf("status.Name = %v, want test_server", status.Name)
	}
	if status.VolumeCount != 1 || status.ClaimCount != 3 || status.BindingCount != 1 {
		t.Errorf("status counters = %+v", status)
	}
	if len(status.PendingClaims) != 1 || status.PendingClaims[0] != "waiting-claim" {
		t.Errorf("status.PendingClaims = %v, want [waiting-claim]", status.PendingClaims)
	}
	if len(status.LostClaims) != 1 || status.LostClaims[0] != "lost-claim" {
		t.Errorf("status.LostClaims = %v, want [lost-claim]", status.LostClaims)
	}
}
