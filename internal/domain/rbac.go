package domain

// Role é o papel efetivo resolvido para um usuário. A resolução segue uma
// ordem de precedência estrita: a regra mais permissiva aplicável vence.
type Role int

const (
	RoleRep Role = iota
	RoleManager
	RoleAdmin
)

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleManager:
		return "manager"
	default:
		return "rep"
	}
}

// Grupos de acesso (análogos aos groups do sistema original), gravados
// no campo role_id do usuário
const (
	GroupAdministrator = 1
	GroupSalesManager  = 2
	GroupSalesRep      = 3
)

// RoleFacts é o retrato imutável dos fatos de papel de um usuário,
// capturado uma vez por requisição a partir das claims
type RoleFacts struct {
	IsSuperuser bool
	GroupID     int
	ProfileRole string
}

// Grant é o resultado da resolução de papel: o papel efetivo e, para
// gerentes, o conjunto de usuários do time (vendedores criados por ele,
// mais ele próprio)
type Grant struct {
	UserID  int
	Role    Role
	TeamIDs []int
}

// EntityKind é o conjunto fechado de tipos de entidade sujeitos a escopo.
// O despacho de política é feito por switch sobre esse enum, nunca por
// reflexão sobre nomes de tipo.
type EntityKind int

const (
	KindAccount EntityKind = iota
	KindContact
	KindProduct
	KindDeal
	KindDealProduct
	KindInteraction
	KindTask
	KindDocument
	KindEmailTemplate
	KindNotification
	KindTimelineEvent
)

// Scope é o recorte de leitura que os repositórios traduzem em predicados
// SQL. All=true significa sem restrição.
type Scope struct {
	All bool

	// UserIDs restringe por assigned_to (e created_by onde a política
	// manda, via OwnerOrCreator)
	UserIDs        []int
	OwnerOrCreator bool

	// AccountIDs restringe entidades alcançadas transitivamente pelos
	// deals visíveis (Account, Contact)
	AccountIDs []string
}

// UnrestrictedScope é o escopo sem filtro, usado para administradores e
// para entidades de catálogo compartilhado
var UnrestrictedScope = Scope{All: true}

// RecordRef carrega os campos de posse de um registro concreto, o
// suficiente para decidir permissões de escrita sem conhecer o tipo
type RecordRef struct {
	AssignedTo *int
	CreatedBy  *int
}
