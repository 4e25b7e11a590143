package ativacao

// OpcaoNavegacao é um destino oferecido ao usuário na tela.
type OpcaoNavegacao struct {
	Rotulo  string `json:"rotulo"`
	Caminho string `json:"caminho"`
}

// ApresentacaoCancelamento é o conteúdo estático da tela de
// cancelamento. Nenhuma chamada externa e nenhuma ação compensatória:
// o provedor nunca chegou a criar uma cobrança, então não há o que
// desfazer.
type ApresentacaoCancelamento struct {
	Mensagem           string           `json:"mensagem"`
	BeneficiosMantidos []string         `json:"beneficios_mantidos"`
	Navegacao          []OpcaoNavegacao `json:"navegacao"`
}

// Cancelamento monta a apresentação do caminho de cancelamento.
func Cancelamento() ApresentacaoCancelamento {
	return ApresentacaoCancelamento{
		Mensagem: "Pagamento cancelado. Você continua no plano gratuito.",
		BeneficiosMantidos: []string{
			"3 filmes por mês",
			"Resolução 720p",
			"Estilos básicos",
		},
		Navegacao: []OpcaoNavegacao{
			{Rotulo: "Ver planos", Caminho: "/pricing"},
			{Rotulo: "Voltar ao dashboard", Caminho: "/dashboard"},
		},
	}
}

// FuncionalidadesPremium é a lista exibida na confirmação de sucesso.
// Informativa apenas: o entitlement que vale é checado no servidor
// quando o usuário de fato cria um filme.
var FuncionalidadesPremium = []string{
	"10 filmes por mês ou ilimitados",
	"Vídeos em 1080p/4K",
	"Todos os estilos premium",
	"Sem marca d'água",
}
