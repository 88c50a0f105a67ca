package university

import (
	"github.com/gin-gonic/gin"

	"controle-estagiarios/internal/global/middleware"
	"controle-estagiarios/internal/global/response"
)

// Catalog is the fixed list of Rio de Janeiro institutions offered in
// the registration form; anything else is entered manually.
var Catalog = []string{
	"Anhanguera - Instituição de Ensino Anhanguera",
	"CBPF – Centro Brasileiro de Pesquisas Físicas",
	"CEFET/RJ – Centro Federal de Educação Tecnológica Celso Suckow da Fonseca",
	"Celso Lisboa – Centro Universitário Celso Lisboa",
	"ENCE – Escola Nacional de Ciências Estatísticas",
	"Estácio - Universidade Estácio de Sá",
	"FACHA – Faculdades Integradas Hélio Alonso",
	"FAETERJ – Faculdade de Educação Tecnológica do Estado do RJ",
	"FGV-RJ – Fundação Getulio Vargas",
	"IBMEC-RJ – Instituto Brasileiro de Mercado de Capitais",
	"IBMR – Instituto Brasileiro de Medicina de Reabilitação",
	"IFRJ – Instituto Federal do Rio de Janeiro",
	"IME – Instituto Militar de Engenharia",
	"IMPA – Instituto de Matemática Pura e Aplicada",
	"ISERJ – Instituto Superior de Educação do Rio de Janeiro",
	"Mackenzie Rio – Universidade Presbiteriana Mackenzie",
	"PUC-Rio – Pontifícia Universidade Católica do Rio de Janeiro",
	"Santa Úrsula – Associação Universitária Santa Úrsula",
	"UCAM – Universidade Cândido Mendes",
	"UCB – Universidade Castelo Branco",
	"UERJ – Universidade do Estado do Rio de Janeiro",
	"UFF – Universidade Federal Fluminense",
	"UFRJ – Universidade Federal do Rio de Janeiro",
	"UFRRJ – Universidade Federal Rural do Rio de Janeiro",
	"UNESA – Universidade Estácio de Sá",
	"UNIABEU – Centro Universitário ABEU",
	"UNICARIOCA – Centro Universitário Carioca",
	"UNIFESO – Centro Universitário Serra dos Órgãos",
	"UNIG – Universidade Iguaçu",
	"UNIGRANRIO – Universidade do Grande Rio",
	"UNILASALLE-RJ – Centro Universitário La Salle do Rio de Janeiro",
	"UNIRIO – Universidade Federal do Estado do Rio de Janeiro",
	"UNISÃOJOSÉ – Centro Universitário São José",
	"UNISIGNORELLI - Centro Universitário Internacional Signorelli",
	"UNISUAM – Centro Universitário Augusto Motta",
	"UNIVERSO – Universidade Salgado de Oliveira",
	"USS – Universidade de Vassouras (antiga Severino Sombra)",
	"UVA – Universidade Veiga de Almeida",
}

func (m *ModuleUniversity) InitRouter(r *gin.RouterGroup) {
	universityGroup := r.Group("/university")
	universityGroup.Use(middleware.Auth(0))
	{
		universityGroup.GET("/list", func(c *gin.Context) {
			response.Success(c, gin.H{"universities": Catalog})
		})
	}
}
