package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Amazon     Amazon     `mapstructure:",squash"`
	AliExpress AliExpress `mapstructure:",squash"`
	Keepa      Keepa      `mapstructure:",squash"`
	Redis      Redis      `mapstructure:",squash"`
	Telegram   Telegram   `mapstructure:",squash"`
	Selection  Selection  `mapstructure:",squash"`
	Collector  Collector  `mapstructure:",squash"`
	Publish    Publish    `mapstructure:",squash"`
	SecretKey  string     `mapstructure:"secret_key"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Timezone string `mapstructure:"timezone"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Amazon struct {
	AccessKey  string `mapstructure:"amazon_access_key"`
	SecretKey  string `mapstructure:"amazon_secret_key"`
	PartnerTag string `mapstructure:"amazon_partner_tag"`
	Host       string `mapstructure:"amazon_host"`
	Region     string `mapstructure:"amazon_region"`
	Country    string `mapstructure:"amazon_country"`
}

type AliExpress struct {
	Enabled   bool   `mapstructure:"use_aliexpress"`
	AppKey    string `mapstructure:"aliexpress_app_key"`
	AppSecret string `mapstructure:"aliexpress_app_secret"`
	FeedURL   string `mapstructure:"aliexpress_feed_url"`
}

type Keepa struct {
	APIKey    string `mapstructure:"keepa_api_key"`
	Enabled   bool   `mapstructure:"use_keepa"`
	TTLHours  int    `mapstructure:"keepa_ttl_hours"`
	Domain    string `mapstructure:"keepa_domain"`
	MaxEnrich int    `mapstructure:"keepa_max_enrich"`
}

type Redis struct {
	URL string `mapstructure:"redis_url"`
}

type Telegram struct {
	BotToken    string `mapstructure:"bot_token"`
	ChannelMain string `mapstructure:"channel_main"`
	ChannelAli  string `mapstructure:"channel_ali"`
}

// Selection concentra as regras de seleção de ofertas
type Selection struct {
	MinStars    float64 `mapstructure:"min_stars"`
	MinDiscount int     `mapstructure:"min_discount"`
	DedupDays   int     `mapstructure:"dedup_days"`
}

// Collector controla a busca por palavra-chave nos catálogos
type Collector struct {
	Keywords            string `mapstructure:"keywords"` // separadas por ";"
	MaxItemsPerKeyword  int    `mapstructure:"max_items_per_keyword"`
	MaxConcurrentJobs   int    `mapstructure:"collector_max_concurrent_jobs"`
	RequestDelaySeconds int    `mapstructure:"collector_request_delay_seconds"`
}

type Publish struct {
	CronSchedule       string `mapstructure:"publish_cron"`
	ReportCronSchedule string `mapstructure:"weekly_report_cron"`
	PostsPerSlot       int    `mapstructure:"posts_per_slot"`
	Enabled            bool   `mapstructure:"publish_enabled"`
	ReportEnabled      bool   `mapstructure:"weekly_report_enabled"`
	AmazonToMain       bool   `mapstructure:"amz_to_main"`
	AmazonToAli        bool   `mapstructure:"amz_to_ali"`
	AliToMain          bool   `mapstructure:"ali_to_main"`
	AliToAli           bool   `mapstructure:"ali_to_ali"`
}

// KeywordList separa e limpa as palavras-chave configuradas
func (c Collector) KeywordList() []string {
	parts := strings.Split(c.Keywords, ";")
	keywords := make([]string, 0, len(parts))
	for _, p := range parts {
		if kw := strings.TrimSpace(p); kw != "" {
			keywords = append(keywords, kw)
		}
	}
	return keywords
}

// TTL converte o TTL de cache configurado em horas para time.Duration
func (c Keepa) TTL() time.Duration {
	return time.Duration(c.TTLHours) * time.Hour
}

// DedupWindow é a janela de supressão de ofertas já publicadas
func (c Selection) DedupWindow() time.Duration {
	return time.Duration(c.DedupDays) * 24 * time.Hour
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("TIMEZONE", "Europe/Rome")

	viper.SetDefault("AMAZON_PARTNER_TAG", "brislydeals-21")
	viper.SetDefault("AMAZON_HOST", "webservices.amazon.it")
	viper.SetDefault("AMAZON_REGION", "eu-west-1")
	viper.SetDefault("AMAZON_COUNTRY", "IT")

	viper.SetDefault("USE_ALIEXPRESS", false)
	viper.SetDefault("ALIEXPRESS_FEED_URL", "https://api-sg.aliexpress.com/sync")

	viper.SetDefault("USE_KEEPA", true)
	viper.SetDefault("KEEPA_TTL_HOURS", 12)  // cache de enriquecimento
	viper.SetDefault("KEEPA_DOMAIN", "IT")   // marketplace Itália
	viper.SetDefault("KEEPA_MAX_ENRICH", 10) // orçamento de chamadas por execução

	viper.SetDefault("CHANNEL_MAIN", "@BrislyDeals")
	viper.SetDefault("CHANNEL_ALI", "@FengXpress")

	viper.SetDefault("MIN_STARS", 4.0)
	viper.SetDefault("MIN_DISCOUNT", 20)
	viper.SetDefault("DEDUP_DAYS", 4)

	viper.SetDefault("KEYWORDS", "")
	viper.SetDefault("MAX_ITEMS_PER_KEYWORD", 5)
	viper.SetDefault("COLLECTOR_MAX_CONCURRENT_JOBS", 3)
	viper.SetDefault("COLLECTOR_REQUEST_DELAY_SECONDS", 1)

	// Slots de publicação (seg-sex) e relatório semanal (domingo ao meio-dia)
	viper.SetDefault("PUBLISH_CRON", "0 9,11,13,15,17,19,21 * * 1-5")
	viper.SetDefault("WEEKLY_REPORT_CRON", "0 12 * * 0")
	viper.SetDefault("POSTS_PER_SLOT", 1)
	viper.SetDefault("PUBLISH_ENABLED", true)
	viper.SetDefault("WEEKLY_REPORT_ENABLED", true)

	viper.SetDefault("AMZ_TO_MAIN", true)
	viper.SetDefault("AMZ_TO_ALI", false)
	viper.SetDefault("ALI_TO_MAIN", true)
	viper.SetDefault("ALI_TO_ALI", true)

	viper.SetDefault("SECRET_KEY", "your_secret_key")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate falha na inicialização quando faltam credenciais obrigatórias.
// Erros de configuração abortam antes de qualquer processamento de candidatos
func (c *Config) Validate() error {
	if c.Amazon.AccessKey == "" || c.Amazon.SecretKey == "" {
		return fmt.Errorf("credenciais da Amazon não configuradas (AMAZON_ACCESS_KEY/AMAZON_SECRET_KEY)")
	}

	if c.Telegram.BotToken == "" {
		return fmt.Errorf("token do bot do Telegram não configurado (BOT_TOKEN)")
	}

	if c.Keepa.Enabled && c.Keepa.APIKey == "" {
		return fmt.Errorf("enriquecimento Keepa habilitado sem chave de API (KEEPA_API_KEY)")
	}

	if c.AliExpress.Enabled && (c.AliExpress.AppKey == "" || c.AliExpress.AppSecret == "") {
		return fmt.Errorf("feed AliExpress habilitado sem credenciais (ALIEXPRESS_APP_KEY/ALIEXPRESS_APP_SECRET)")
	}

	if len(c.Collector.KeywordList()) == 0 {
		logrus.Warn("Nenhuma palavra-chave configurada (KEYWORDS); coletas retornarão vazio")
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Info("Nenhum arquivo .env encontrado; usando variáveis de ambiente")
}
