package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"bodega-pos/internal/audit"
	"bodega-pos/internal/models"
)

// GetCustomers lists customers for the checkout lookup.
func (h *Handler) GetCustomers(c *gin.Context) {
	query := h.DB.Model(&models.Customer{})
	if q := c.Query("q"); q != "" {
		like := "%" + q + "%"
		query = query.Where("name LIKE ? OR phone LIKE ?", like, like)
	}

	var customers []models.Customer
	if err := query.Order("name").Find(&customers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch customers"})
		return
	}
	c.JSON(http.StatusOK, customers)
}

type CustomerInput struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// AddCustomer creates a customer and audits the write.
func (h *Handler) AddCustomer(c *gin.Context) {
	var input CustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	customer := models.Customer{Name: input.Name, Phone: input.Phone, Email: input.Email}
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&customer).Error; err != nil {
			return err
		}
		return audit.Record(tx, actorID(c), audit.ActionCreate, audit.EntityCustomer, customer.ID, nil, &customer)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create customer"})
		return
	}

	c.JSON(http.StatusCreated, customer)
}

// UpdateCustomer edits contact fields and audits the change.
func (h *Handler) UpdateCustomer(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer ID"})
		return
	}

	var customer models.Customer
	if err := h.DB.First(&customer, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		return
	}
	before := customer

	var input CustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	customer.Name = input.Name
	customer.Phone = input.Phone
	customer.Email = input.Email

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&customer).Error; err != nil {
			return err
		}
		return audit.Record(tx, actorID(c), audit.ActionUpdate, audit.EntityCustomer, customer.ID, &before, &customer)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update customer"})
		return
	}

	c.JSON(http.StatusOK, customer)
}
