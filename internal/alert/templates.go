package alert

type Locale string

const (
	LocaleEN Locale = "en"
	LocaleZH Locale = "zh"
)

const (
	separator = "-----------------------------"
	docURL    = "https://docs.aws.amazon.com/eks/latest/userguide/kubernetes-versions.html"
)

type templates struct {
	region string

	fleetTitle    string
	fleetExpired  string
	fleetExpiring string

	createTitle    string
	createExpired  string
	createExpiring string

	clusterList string
	doc         string

	upgradeTitle    string
	upgrade         string
	copyVariables   string
	applicationName string
	topicARN        string
	processing      string

	// {title, line}
	clusterDeleting [2]string
	stackUpdating   [2]string
	stackUpdated    [2]string
	stackDeleting   [2]string
	stackCreated    [2]string
}

var locales = map[Locale]templates{
	LocaleEN: {
		region: "Region: %s",

		fleetTitle:    "EKS cluster versions reaching end of support",
		fleetExpired:  "Cluster %s with version %s has reached end of support %d days ago. Please upgrade as soon as possible.",
		fleetExpiring: "Cluster %s with version %s will reach end of support on %s (%d days left). Please upgrade as soon as possible.",

		createTitle:    "Risk alert for creating EKS cluster with lower version",
		createExpired:  "Detected a new cluster named %s with version %s that has reached end of support %d days ago. Please upgrade as soon as possible.",
		createExpiring: "Detected that a new cluster named %s with version %s is outdated, and this version will reach end of support on %s (%d days left). It is recommended to rebuild the cluster with a higher version, unless necessary.",

		clusterList: "Cluster List: %s",
		doc:         "Doc: %s",

		upgradeTitle:    "EKS-Notifier needs to be upgraded",
		upgrade:         "The latest version of EKS-Notifier is %s, and the current version is %s. Click the link to upgrade: %s",
		copyVariables:   "Please make sure to copy the following variables:",
		applicationName: "【Application name】%s",
		topicARN:        "【SnsArn】%s",
		processing:      "Processing: %s",

		clusterDeleting: [2]string{"Deleting an EKS Cluster", "Cluster %s is being deleted..."},
		stackUpdating:   [2]string{"EKS-Notifier Updating", "%s is updating..."},
		stackUpdated:    [2]string{"EKS-Notifier Updated", "%s Updated, Version: %s, will check clusters again..."},
		stackDeleting:   [2]string{"EKS-Notifier Deleting", "%s deleting... You will no longer receive EKS notifications."},
		stackCreated:    [2]string{"EKS-Notifier Created", "%s created, will check clusters..."},
	},
	LocaleZH: {
		region: "区域：%s",

		fleetTitle:    "EKS重要通知",
		fleetExpired:  "集群 %s 版本 %s 已停止支持 %d 天 ，请尽快升级。",
		fleetExpiring: "集群 %s 版本 %s 将在 %s （%d天后） 停止支持，请尽快升级。",

		createTitle:    "新建低版本EKS集群风险提示",
		createExpired:  "检测到新建集群 %s 版本 %s 已停止支持 %d 天 ，请尽快升级。",
		createExpiring: "检测到新建集群 %s 版本 %s 将在 %s （%d天后） 停止支持，如非必要，建议使用更高版本重建集群。",

		clusterList: "集群列表：%s",
		doc:         "参考页面：%s",

		upgradeTitle:    "EKS-Notifier 需要升级",
		upgrade:         "EKS-Notifier 最新版本为 %s，当前版本为 %s。点击链接升级：%s",
		copyVariables:   "请务必复制以下变量：",
		applicationName: "【Application name】%s",
		topicARN:        "【SnsArn】%s",
		processing:      "处理进度：%s",

		clusterDeleting: [2]string{"正在删除EKS集群", "集群 %s 正在删除..."},
		stackUpdating:   [2]string{"EKS-Notifier 更新中", "%s 正在更新..."},
		stackUpdated:    [2]string{"EKS-Notifier 已更新", "%s 已更新，版本：%s，将重新检查集群..."},
		stackDeleting:   [2]string{"EKS-Notifier 删除中", "%s 正在删除... 您将不再收到EKS通知。"},
		stackCreated:    [2]string{"EKS-Notifier 已创建", "%s 已创建，将检查集群..."},
	},
}
