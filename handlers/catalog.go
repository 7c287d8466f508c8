package handlers

import (
	"net/http"

	"pawspa/services/booking"

	"github.com/gin-gonic/gin"
)

// GetPackages returns the grooming package catalog, optionally filtered by
// pet type.
func GetPackages(c *gin.Context) {
	if petType := c.Query("petType"); petType != "" {
		c.JSON(http.StatusOK, gin.H{"packages": booking.PackagesForPetType(petType)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"packages": booking.Packages()})
}

// GetPackageByID returns one package with its tier prices.
func GetPackageByID(c *gin.Context) {
	pkg, err := booking.PackageByID(c.Param("packageID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pkg)
}

// GetSingleServices returns the à-la-carte service catalog.
func GetSingleServices(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"services": booking.SingleServices()})
}

// GetAddOns returns the add-on catalog.
func GetAddOns(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"addOns": booking.AddOns()})
}

// GetWeightTiers returns the selectable weight tier labels.
func GetWeightTiers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"weightTiers": booking.WeightTiers()})
}
