package handler

import (
	"todolist/internal/domain/entity"
	"todolist/internal/usecase"
)

// UserPublic is the outward view of an account. The password hash never leaves the service.
type UserPublic struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UserList wraps a page of users.
type UserList struct {
	Users []UserPublic `json:"users"`
}

// TodoPublic is the outward view of a todo.
type TodoPublic struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	State       string  `json:"state"`
}

// TodoList wraps a page of todos.
type TodoList struct {
	Todos []TodoPublic `json:"todos"`
}

// TokenResponse is the OAuth2 password-flow token body.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func toUserPublic(user *entity.User) UserPublic {
	return UserPublic{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
}

func toUserList(users []*entity.User) UserList {
	list := UserList{Users: make([]UserPublic, 0, len(users))}
	for _, user := range users {
		list.Users = append(list.Users, toUserPublic(user))
	}

	return list
}

func toTodoPublic(todo *entity.Todo) TodoPublic {
	return TodoPublic{
		ID:          todo.ID,
		Title:       todo.Title,
		Description: todo.Description,
		State:       todo.State.String(),
	}
}

func toTodoList(todos []*entity.Todo) TodoList {
	list := TodoList{Todos: make([]TodoPublic, 0, len(todos))}
	for _, todo := range todos {
		list.Todos = append(list.Todos, toTodoPublic(todo))
	}

	return list
}

func toTokenResponse(token *usecase.Token) TokenResponse {
	return TokenResponse{
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
	}
}
