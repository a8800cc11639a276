package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/esteban-lambda/crm-api/internal/domain"
	"github.com/esteban-lambda/crm-api/internal/usecases/authorizing"
	"github.com/esteban-lambda/crm-api/internal/usecases/catalog"
	"github.com/esteban-lambda/crm-api/pkg/apiErrors"
)

// ProductList lista o catálogo compartilhado. O catálogo não tem dono,
// então qualquer usuário autenticado enxerga todos os produtos.
func ProductList(service catalog.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		onlyActive := r.URL.Query().Get("active") == "true"

		products, err := service.ListProducts(onlyActive)
		if err != nil {
			logrus.Error("Erro ao listar produtos:", err)
			writeProductError(w, err)
			return
		}

		writeJSON(w, products)
	})
}

func ProductCreate(service catalog.CatalogService, authorizationService authorizing.AuthorizationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		grant, ok := resolveGrant(w, r, authorizationService)
		if !ok {
			return
		}

		var payload domain.Product
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		created, err := service.CreateProduct(grant, &payload)
		if err != nil {
			logrus.Error("Erro ao criar produto:", err)
			writeProductError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		writeJSON(w, created)
	})
}

func ProductGet(service catalog.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		productID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		product, err := service.GetProduct(productID)
		if err != nil {
			logrus.Error("Erro ao buscar produto:", err)
			writeProductError(w, err)
			return
		}

		writeJSON(w, product)
	})
}

func ProductUpdate(service catalog.CatalogService, authorizationService authorizing.AuthorizationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		grant, ok := resolveGrant(w, r, authorizationService)
		if !ok {
			return
		}

		var payload domain.Product
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		payload.ID = httprouter.ParamsFromContext(r.Context()).ByName("id")

		updated, err := service.UpdateProduct(grant, &payload)
		if err != nil {
			logrus.Error("Erro ao atualizar produto:", err)
			writeProductError(w, err)
			return
		}

		writeJSON(w, updated)
	})
}

func ProductDelete(service catalog.CatalogService, authorizationService authorizing.AuthorizationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		grant, ok := resolveGrant(w, r, authorizationService)
		if !ok {
			return
		}

		productID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteProduct(grant, productID); err != nil {
			logrus.Error("Erro ao remover produto:", err)
			writeProductError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func writeProductError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalog.ErrProductNotFound):
		apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, "Produto não encontrado", nil)
	case errors.Is(err, catalog.ErrInvalidProduct):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome e SKU do produto são obrigatórios", nil)
	case errors.Is(err, catalog.ErrDuplicateSKU):
		apiErrors.WriteError(w, apiErrors.ErrDuplicateRecord, "Já existe um produto com este SKU", nil)
	case errors.Is(err, catalog.ErrPermissionDenied):
		apiErrors.WriteError(w, apiErrors.ErrPermissionDenied, "Registro fora do seu escopo de acesso", nil)
	case errors.Is(err, catalog.ErrDeleteForbidden):
		apiErrors.WriteError(w, apiErrors.ErrDeleteForbidden, "Seu papel não permite excluir este registro", nil)
	case errors.Is(err, catalog.ErrFetchProduct), errors.Is(err, catalog.ErrSaveProduct):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao acessar produtos no banco de dados", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar produto", nil)
	}
}
