package router

import (
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	apis "github.com/bindstor/bindstor/pkg/apis/bindstor"
	"github.com/bindstor/bindstor/pkg/apiserver/controller"
)

// CollectRoute registers all the apiserver routes on the gin engine
func CollectRoute(r *gin.Engine, m apis.StorageMember) *gin.Engine {
	log.Info("CollectRoute start ...")

	v1 := r.Group("/apis/bindstor.io/v1alpha1")

	volumeController := controller.NewVolumeController(m)
	v1.GET("/cluster/volumes", volumeController.VolumeList)
	v1.GET("/cluster/volumes/:volumeName", volumeController.VolumeGet)
	v1.POST("/cluster/volumes", volumeController.VolumeRegister)
	v1.DELETE("/cluster/volumes/:volumeName", volumeController.VolumeRelease)
	v1.POST("/cluster/volumes/:volumeName/destroy", volumeController.VolumeDestroy)

	claimController := controller.NewClaimController(m)
	v1.GET("/cluster/claims", claimController.ClaimList)
	v1.GET("/cluster/claims/:claimName", claimController.ClaimGet)
	v1.POST("/cluster/claims", claimController.ClaimSubmit)
	v1.DELETE("/cluster/claims/:claimName", claimController.ClaimRelease)
	v1.GET("/cluster/bindings", claimController.BindingList)
	v1.GET("/cluster/events", claimController.EventList)

	mountController := controller.NewMountController(m)
	v1.GET("/cluster/mounts", mountController.MountList)
	v1.DELETE("/cluster/mounts/:mountID", mountController.MountRelease)
	v1.POST("/cluster/workloads/:workloadName/mounts", mountController.WorkloadMountsRequest)

	return r
}
