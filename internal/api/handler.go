package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"
	"github.com/samandr77/crm/internal/entity"
	"github.com/samandr77/crm/internal/service"
)

type Service interface {
	Clients(ctx context.Context) ([]entity.Client, error)
	ClientByID(ctx context.Context, id uuid.UUID) (entity.Client, error)
	CreateClient(ctx context.Context, input entity.ClientInput) (entity.Client, error)
	UpdateClient(ctx context.Context, id uuid.UUID, input entity.ClientInput) (entity.Client, error)
	DeleteClient(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
	RequestsByClientID(ctx context.Context, clientID uuid.UUID) ([]entity.Request, error)
	CreateRequest(ctx context.Context, input entity.RequestInput) (entity.Request, error)
}

// @title CRM Clients API
// @version 1.0
// @description API для управления клиентами и заявками.
// @BasePath /

type Handler struct {
	s Service
}

func NewHandler(s Service) *Handler {
	return &Handler{
		s,
	}
}

// Health godoc
// @Summary      Проверка состояния сервиса
// @Description  Возвращает статус работы сервиса
// @Tags         health
// @Success      200 {string} string "Сервис работает!"
// @Failure      500 {object} ResponseError "Сервис не работает"
// @Router       /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, err := w.Write([]byte("Сервис работает!\n"))
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "Сервис не работает!")
	}
}

type ClientRequest struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	Description string `json:"description"`
}

type ClientResponse struct {
	ID          uuid.UUID `json:"id"`
	FullName    string    `json:"fullName"`
	Email       string    `json:"email"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

func clientResponse(client entity.Client) ClientResponse {
	return ClientResponse{
		ID:          client.ID,
		FullName:    client.FullName,
		Email:       client.Email,
		Description: client.Description,
		CreatedAt:   client.CreatedAt,
	}
}

// Clients godoc
// @Summary      Список клиентов
// @Description  Возвращает всех клиентов, отсортированных по дате создания (новые первыми)
// @Tags         clients
// @Produce      json
// @Success      200 {array} ClientResponse "Список клиентов"
// @Failure      500 {object} ResponseError "Ошибка сервера"
// @Router       /clients [get]
func (h *Handler) Clients(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clients, err := h.s.Clients(ctx)
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalRuText)
		return
	}

	resp := make([]ClientResponse, 0, len(clients))
	for _, client := range clients {
		resp = append(resp, clientResponse(client))
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}

// ClientByID godoc
// @Summary      Клиент по идентификатору
// @Description  Возвращает одного клиента по id
// @Tags         clients
// @Produce      json
// @Param        id path string true "ID клиента"
// @Success      200 {object} ClientResponse "Клиент"
// @Failure      400 {object} ResponseError "Некорректный идентификатор"
// @Failure      404 {object} ResponseError "Клиент не найден"
// @Failure      500 {object} ResponseError "Ошибка сервера"
// @Router       /clients/{id} [get]
func (h *Handler) ClientByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := clientIDFromURL(ctx, w, r)
	if !ok {
		return
	}

	client, err := h.s.ClientByID(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, "Клиент не найден")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalRuText)

		return
	}

	SendJSON(ctx, w, http.StatusOK, clientResponse(client))
}

// CreateClient godoc
// @Summary      Создание клиента
// @Description  Создает нового клиента
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        request body ClientRequest true "Данные клиента"
// @Success      201 {object} ClientResponse "Созданный клиент"
// @Failure      400 {object} ResponseError "Некорректный запрос"
// @Failure      500 {object} ResponseError "Ошибка сервера"
// @Router       /clients [post]
func (h *Handler) CreateClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	input, ok := clientInputFromBody(ctx, w, r)
	if !ok {
		return
	}

	client, err := h.s.CreateClient(ctx, input)
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "Ошибка при создании клиента")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, clientResponse(client))
}

// UpdateClient godoc
// @Summary      Обновление клиента
// @Description  Полностью заменяет изменяемые поля клиента
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        id path string true "ID клиента"
// @Param        request body ClientRequest true "Новые данные клиента"
// @Success      200 {object} ClientResponse "Обновленный клиент"
// @Failure      400 {object} ResponseError "Некорректный запрос"
// @Failure      404 {object} ResponseError "Клиент не найден"
// @Failure      500 {object} ResponseError "Ошибка сервера"
// @Router       /clients/{id} [put]
func (h *Handler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := clientIDFromURL(ctx, w, r)
	if !ok {
		return
	}

	input, ok := clientInputFromBody(ctx, w, r)
	if !ok {
		return
	}

	client, err := h.s.UpdateClient(ctx, id, input)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, "Клиент не найден")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, "Ошибка при обновлении клиента")

		return
	}

	SendJSON(ctx, w, http.StatusOK, clientResponse(client))
}

type DeleteClientResponse struct {
	ID uuid.UUID `json:"id"`
}

// DeleteClient godoc
// @Summary      Удаление клиента
// @Description  Удаляет клиента вместе с его заявками
// @Tags         clients
// @Produce      json
// @Param        id path string true "ID клиента"
// @Success      200 {object} DeleteClientResponse "ID удаленного клиента"
// @Failure      400 {object} ResponseError "Некорректный идентификатор"
// @Failure      404 {object} ResponseError "Клиент не найден"
// @Failure      500 {object} ResponseError "Ошибка сервера"
// @Router       /clients/{id} [delete]
func (h *Handler) DeleteClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := clientIDFromURL(ctx, w, r)
	if !ok {
		return
	}

	deletedID, err := h.s.DeleteClient(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, "Клиент не найден")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, "Ошибка при удалении клиента")

		return
	}

	SendJSON(ctx, w, http.StatusOK, DeleteClientResponse{ID: deletedID})
}

type RequestResponse struct {
	ID        uuid.UUID     `json:"id"`
	FullName  string        `json:"fullName"`
	Title     string        `json:"title"`
	Status    string        `json:"status"`
	ClientID  uuid.NullUUID `json:"clientId"`
	Comment   string        `json:"comment"`
	CreatedAt time.Time     `json:"createdAt"`
}

func requestResponse(request entity.Request) RequestResponse {
	return RequestResponse{
		ID:        request.ID,
		FullName:  request.FullName,
		Title:     request.Title,
		Status:    request.Status.String(),
		ClientID:  request.ClientID,
		Comment:   request.Comment,
		CreatedAt: request.CreatedAt,
	}
}

// RequestsByClient godoc
// @Summary      Заявки клиента
// @Description  Возвращает заявки клиента, отсортированные по дате создания (новые первыми)
// @Tags         requests
// @Produce      json
// @Param        id path string true "ID клиента"
// @Success      200 {array} RequestResponse "Список заявок"
// @Failure      400 {object} ResponseError "Некорректный идентификатор"
// @Failure      404 {object} ResponseError "Клиент не найден"
// @Failure      500 {object} ResponseError "Ошибка сервера"
// @Router       /clients/{id}/requests [get]
func (h *Handler) RequestsByClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := clientIDFromURL(ctx, w, r)
	if !ok {
		return
	}

	requests, err := h.s.RequestsByClientID(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, "Клиент не найден")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalRuText)

		return
	}

	resp := make([]RequestResponse, 0, len(requests))
	for _, request := range requests {
		resp = append(resp, requestResponse(request))
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}

type CreateRequestRequest struct {
	FullName string     `json:"fullName"`
	Title    string     `json:"title"`
	Status   string     `json:"status"`
	ClientID *uuid.UUID `json:"clientId,omitempty"`
	Comment  string     `json:"comment"`
}

// CreateRequest godoc
// @Summary      Создание заявки
// @Description  Создает заявку, опционально привязанную к клиенту
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        request body CreateRequestRequest true "Данные заявки"
// @Success      201 {object} RequestResponse "Созданная заявка"
// @Failure      400 {object} ResponseError "Некорректный запрос"
// @Failure      404 {object} ResponseError "Клиент не найден"
// @Failure      500 {object} ResponseError "Ошибка сервера"
// @Router       /requests [post]
func (h *Handler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateRequestRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, fmt.Errorf("%w: %w", entity.ErrIncorrectRequestBody, err), "Некорректное тело запроса")
		return
	}

	input := entity.RequestInput{
		FullName: req.FullName,
		Title:    req.Title,
		Status:   entity.RequestStatus(req.Status),
		Comment:  req.Comment,
	}

	if req.ClientID != nil {
		input.ClientID = uuid.NullUUID{UUID: *req.ClientID, Valid: true}
	}

	err = service.ValidateRequestInput(input)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Некорректное тело запроса")
		return
	}

	request, err := h.s.CreateRequest(ctx, input)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, "Клиент не найден")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, "Ошибка при создании заявки")

		return
	}

	SendJSON(ctx, w, http.StatusCreated, requestResponse(request))
}

func clientIDFromURL(ctx context.Context, w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest,
			fmt.Errorf("%w: parse client id: %w", entity.ErrIncorrectRequestBody, err), "Некорректный идентификатор")

		return uuid.Nil, false
	}

	return id, true
}

func clientInputFromBody(ctx context.Context, w http.ResponseWriter, r *http.Request) (entity.ClientInput, bool) {
	var req ClientRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest,
			fmt.Errorf("%w: %w", entity.ErrIncorrectRequestBody, err), "Некорректное тело запроса")

		return entity.ClientInput{}, false
	}

	input := entity.ClientInput{
		FullName:    req.FullName,
		Email:       req.Email,
		Description: req.Description,
	}

	err = service.ValidateClientInput(input)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Некорректное тело запроса")
		return entity.ClientInput{}, false
	}

	return input, true
}
