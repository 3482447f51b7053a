package handler

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"pos_cafe/config"
	"pos_cafe/constants"
	"pos_cafe/database"
	"pos_cafe/helper"
	"pos_cafe/model"
	"pos_cafe/utils"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func outletOrDefault(id *uint) uint {
	if id != nil && *id > 0 {
		return *id
	}
	return constants.DefaultOutletID
}

func upsertProductStock(tx *gorm.DB, productID, outletID uint, stockQty, minStock int) error {
	if stockQty < 0 {
		stockQty = 0
	}
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "product_id"}, {Name: "outlet_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"stock_qty", "min_stock"}),
	}).Create(&model.ProductStock{
		ProductID: productID,
		OutletID:  outletID,
		StockQty:  stockQty,
		MinStock:  minStock,
	}).Error
}

func GetProducts(c *fiber.Ctx) error {
	var filter model.FilterProduct
	if err := c.QueryParser(&filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid filter", err)
	}

	condition := database.DB.Model(&model.Product{})
	if filter.CategoryID != nil {
		condition = condition.Where("category_id = ?", *filter.CategoryID)
	}
	if key := strings.TrimSpace(filter.SearchKey); key != "" {
		// Qualified: the listing joins categories, which also has a name column.
		like := "%" + key + "%"
		condition = condition.Where("products.name ILIKE ? OR products.description ILIKE ?", like, like)
	}
	if filter.OnlyAvailable {
		condition = condition.Where("is_available = ?", true)
	}

	var totalCount int64
	condition.Count(&totalCount)
	condition = utils.ApplyPagination(condition, filter.Limit, filter.Page)

	var products []model.Product
	if err := condition.
		Preload("Category").
		Select("products.*").
		Joins("LEFT JOIN categories ON categories.id = products.category_id").
		Order("categories.sort_order ASC, products.name ASC").
		Find(&products).Error; err != nil {
		log.Printf("product list failed: %v", err)
		return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
			Rows:  []fiber.Map{},
			Limit: filter.Limit,
			Page:  filter.Page,
		})
	}

	outletID := outletOrDefault(filter.OutletID)
	stockByProduct := map[uint]model.ProductStock{}
	var stocks []model.ProductStock
	if err := database.DB.Where("outlet_id = ?", outletID).Find(&stocks).Error; err == nil {
		for _, stock := range stocks {
			stockByProduct[stock.ProductID] = stock
		}
	}

	rows := make([]fiber.Map, 0, len(products))
	for _, product := range products {
		stock := stockByProduct[product.ID]
		rows = append(rows, fiber.Map{
			"id":           product.ID,
			"categoryId":   product.CategoryID,
			"categoryName": product.Category.Name,
			"name":         product.Name,
			"slug":         product.Slug,
			"description":  product.Description,
			"price":        product.Price,
			"imageUrl":     product.ImageUrl,
			"isAvailable":  product.IsAvailable,
			"stockQty":     stock.StockQty,
			"minStock":     stock.MinStock,
		})
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       rows,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}

func CreateProduct(c *fiber.Ctx) error {
	input := c.Locals("input").(model.ProductInput)

	var product model.Product
	copier.Copy(&product, &input)
	product.Name = strings.TrimSpace(input.Name)
	if input.IsAvailable == nil {
		product.IsAvailable = true
	}

	outletID := outletOrDefault(input.OutletID)
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		product.Slug = helper.GenerateUniqueProductSlug(tx, product.Name)
		if err := tx.Create(&product).Error; err != nil {
			return err
		}
		return upsertProductStock(tx, product.ID, outletID, input.StockQty, input.MinStock)
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create product", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, product)
}

func UpdateProduct(c *fiber.Ctx) error {
	productID := c.Locals("inputId").(int)
	input := c.Locals("input").(model.ProductInput)

	var product model.Product
	if err := database.DB.First(&product, productID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PRODUCT_NOT_FOUND, err)
	}

	copier.Copy(&product, &input)
	product.Name = strings.TrimSpace(input.Name)
	if input.IsAvailable != nil {
		product.IsAvailable = *input.IsAvailable
	}

	outletID := outletOrDefault(input.OutletID)
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&product).Error; err != nil {
			return err
		}
		return upsertProductStock(tx, product.ID, outletID, input.StockQty, input.MinStock)
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update product", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, product)
}

// DeleteProducts removes products together with their stock counters and
// movement history. Order items survive through their snapshots; the weak
// product reference goes NULL.
func DeleteProducts(c *fiber.Ctx) error {
	input := c.Locals("deleteIds").(model.ArrayId)

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id IN ?", input.IDs).Delete(&model.StockMovement{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id IN ?", input.IDs).Delete(&model.ProductStock{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.OrderItem{}).Where("product_id IN ?", input.IDs).Update("product_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Product{}, input.IDs).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete products", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": len(input.IDs)})
}

const maxUploadSizeBytes = 2 * 1024 * 1024

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// UploadProductImage stores the image and attaches the URL to the product.
// With cloudinary configured the file goes there; otherwise it lands under
// ./public/images with a uuid filename.
func UploadProductImage(c *fiber.Ctx) error {
	productID := c.Locals("inputId").(int)

	var product model.Product
	if err := database.DB.First(&product, productID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PRODUCT_NOT_FOUND, err)
	}

	file, err := c.FormFile("image")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Image file is required", err)
	}

	if file.Size > maxUploadSizeBytes {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Image must be at most 2MB", nil)
	}

	extension := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExtensions[extension] {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Image must be JPG, PNG or WEBP", errors.New(extension))
	}

	var imageUrl string
	if cld, ok := c.Locals("cld").(*cloudinary.Cloudinary); ok {
		src, err := file.Open()
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to read image", err)
		}
		defer src.Close()

		result, err := cld.Upload.Upload(c.Context(), src, uploader.UploadParams{
			Folder:   "pos_cafe/products",
			PublicID: uuid.New().String(),
		})
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to upload image", err)
		}
		imageUrl = result.SecureURL
	} else {
		filename := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.New().String(), extension)
		if err := c.SaveFile(file, filepath.Join("public", "images", filename)); err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to store image", err)
		}
		imageUrl = "/images/" + filename
	}

	if err := database.DB.Model(&product).Update("image_url", imageUrl).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update product image", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"imageUrl": imageUrl})
}

// GenerateSignature signs direct-to-cloudinary upload params for clients
// that upload product photos without passing the file through this server.
func GenerateSignature(c *fiber.Ctx) error {
	type SigParams struct {
		Folder   string `json:"folder"`
		PublicID string `json:"public_id"`
	}

	var params SigParams
	if err := c.BodyParser(&params); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid signature params", err)
	}

	timestamp := time.Now().Unix()
	paramMap := map[string]string{
		"timestamp": fmt.Sprintf("%d", timestamp),
	}
	if params.Folder != "" {
		paramMap["folder"] = params.Folder
	}
	if params.PublicID != "" {
		paramMap["public_id"] = params.PublicID
	}

	keys := make([]string, 0, len(paramMap))
	for k := range paramMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var stringToSign strings.Builder
	for i, k := range keys {
		if i > 0 {
			stringToSign.WriteString("&")
		}
		stringToSign.WriteString(k)
		stringToSign.WriteString("=")
		stringToSign.WriteString(paramMap[k])
	}
	stringToSign.WriteString(config.Config("CLOUDINARY_API_SECRET"))

	h := sha1.New()
	h.Write([]byte(stringToSign.String()))
	signature := hex.EncodeToString(h.Sum(nil))

	return c.JSON(fiber.Map{
		"signature": signature,
		"timestamp": timestamp,
		"apiKey":    config.Config("CLOUDINARY_API_KEY"),
		"cloudName": config.Config("CLOUDINARY_CLOUD_NAME"),
	})
}
