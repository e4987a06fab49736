package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"medivance-backend/models"
)

// GetCompany mengembalikan profil perusahaan, pimpinan dan fasilitas.
func (ctrl *Controller) GetCompany(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"company": ctrl.Company.Profile()})
}

// UpdateCompanyInfo mengganti teks misi, visi, nilai dan cerita perusahaan.
func (ctrl *Controller) UpdateCompanyInfo(c *gin.Context) {
	var info models.CompanyInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := ctrl.Company.UpdateInfo(info)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"info": updated})
}

// CreateMember menambah anggota pimpinan.
func (ctrl *Controller) CreateMember(c *gin.Context) {
	var member models.LeadershipMember
	if err := c.ShouldBindJSON(&member); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := ctrl.Company.AddMember(member)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"member": created})
}

// UpdateMember mengganti data anggota pimpinan.
func (ctrl *Controller) UpdateMember(c *gin.Context) {
	id, ok := paramID(c, "member")
	if !ok {
		return
	}
	var member models.LeadershipMember
	if err := c.ShouldBindJSON(&member); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := ctrl.Company.UpdateMember(id, member)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"member": updated})
}

// DeleteMember menghapus anggota pimpinan.
func (ctrl *Controller) DeleteMember(c *gin.Context) {
	id, ok := paramID(c, "member")
	if !ok {
		return
	}
	if err := ctrl.Company.DeleteMember(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Member deleted successfully"})
}

// CreateFacility menambah fasilitas.
func (ctrl *Controller) CreateFacility(c *gin.Context) {
	var facility models.Facility
	if err := c.ShouldBindJSON(&facility); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := ctrl.Company.AddFacility(facility)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"facility": created})
}

// UpdateFacility mengganti data fasilitas.
func (ctrl *Controller) UpdateFacility(c *gin.Context) {
	id, ok := paramID(c, "facility")
	if !ok {
		return
	}
	var facility models.Facility
	if err := c.ShouldBindJSON(&facility); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := ctrl.Company.UpdateFacility(id, facility)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"facility": updated})
}

// DeleteFacility menghapus fasilitas.
func (ctrl *Controller) DeleteFacility(c *gin.Context) {
	id, ok := paramID(c, "facility")
	if !ok {
		return
	}
	if err := ctrl.Company.DeleteFacility(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Facility deleted successfully"})
}
